package render

import (
	"fmt"
	"html"
	"strings"

	"resume-builder/internal/resume"
	"resume-builder/internal/templates"
)

// htmlFragment converts a block sequence into markup. Both the preview pane
// and the print document are produced from this one adapter, which is what
// keeps the two targets in lockstep.
func htmlFragment(blocks []Block, tpl templates.Template) string {
	var b strings.Builder
	for _, block := range blocks {
		switch block.Kind {
		case KindName:
			fmt.Fprintf(&b, `<h1 class="name" style="color:%s">%s</h1>`+"\n",
				html.EscapeString(tpl.Colors.Primary), html.EscapeString(block.Text))
		case KindContactLine:
			fmt.Fprintf(&b, `<p class="contact">%s</p>`+"\n", html.EscapeString(block.Text))
		case KindHeading:
			fmt.Fprintf(&b, `<h2 class="section" style="color:%s;border-bottom:2px solid %s">%s</h2>`+"\n",
				html.EscapeString(tpl.Colors.Primary), html.EscapeString(tpl.Colors.Primary),
				html.EscapeString(block.Text))
		case KindTitle:
			fmt.Fprintf(&b, `<p class="entry-title">%s</p>`+"\n", html.EscapeString(block.Text))
		case KindSubtle:
			fmt.Fprintf(&b, `<p class="subtle">%s</p>`+"\n", html.EscapeString(block.Text))
		case KindText:
			fmt.Fprintf(&b, `<p class="text">%s</p>`+"\n", html.EscapeString(block.Text))
		case KindBullets:
			b.WriteString("<ul>\n")
			for _, item := range block.Items {
				fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(item))
			}
			b.WriteString("</ul>\n")
		}
	}
	return b.String()
}

// Preview renders the live preview fragment for the editor pane.
func Preview(doc resume.Document, tpl templates.Template) (string, error) {
	blocks, err := Layout(doc)
	if err != nil {
		return "", err
	}
	return wrapFragment(htmlFragment(blocks, tpl), tpl), nil
}

// CoverLetterPreview renders the live preview fragment for a cover letter.
func CoverLetterPreview(doc resume.Document, body string, tpl templates.Template) (string, error) {
	blocks, err := CoverLetterLayout(doc, body)
	if err != nil {
		return "", err
	}
	return wrapFragment(htmlFragment(blocks, tpl), tpl), nil
}

func wrapFragment(inner string, tpl templates.Template) string {
	return fmt.Sprintf(`<div class="resume-preview" style="color:%s">`+"\n%s</div>\n",
		html.EscapeString(tpl.Colors.Text), inner)
}
