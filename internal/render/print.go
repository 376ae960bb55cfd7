package render

import (
	"fmt"
	"html"

	"resume-builder/internal/resume"
	"resume-builder/internal/templates"
)

// printShell wraps a rendered fragment in a complete A4 print document.
// Pagination is delegated to the print engine; content past the first page
// is a known limitation of the single-page designs, not handled here.
const printShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 40px; }
body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: %s; margin: 0; }
h1.name { font-size: 24px; margin: 0 0 5px 0; }
p.contact { font-size: 10px; color: #666; margin: 0 0 3px 0; }
h2.section { font-size: 14px; margin: 15px 0 8px 0; padding-bottom: 3px; }
p.entry-title { font-weight: bold; margin: 0 0 2px 0; }
p.subtle { font-size: 10px; color: #666; margin: 0 0 4px 0; }
p.text { margin: 0 0 5px 0; line-height: 1.4; }
ul { margin: 0 0 6px 0; padding-left: 15px; }
li { margin-bottom: 3px; }
</style>
</head>
<body>
%s</body>
</html>
`

// PrintHTML renders the complete print document for a resume.
func PrintHTML(doc resume.Document, tpl templates.Template) (string, error) {
	blocks, err := Layout(doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(printShell, html.EscapeString(tpl.Colors.Text), htmlFragment(blocks, tpl)), nil
}

// CoverLetterPrintHTML renders the complete print document for a cover letter.
func CoverLetterPrintHTML(doc resume.Document, body string, tpl templates.Template) (string, error) {
	blocks, err := CoverLetterLayout(doc, body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(printShell, html.EscapeString(tpl.Colors.Text), htmlFragment(blocks, tpl)), nil
}
