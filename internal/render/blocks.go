// Package render derives presentation output from a (document, template)
// pair. One layout derivation produces a renderer-agnostic block sequence;
// thin adapters turn that sequence into the live preview fragment and the
// paginated print document, so both targets carry identical content.
package render

import (
	"errors"
	"regexp"
	"strings"

	"resume-builder/internal/resume"
)

// Kind classifies a layout block.
type Kind int

const (
	// KindName is the document owner's name at the top of the page.
	KindName Kind = iota
	// KindContactLine is one muted line in the header (location, email/phone, linkedin).
	KindContactLine
	// KindHeading is a colored section heading (SKILLS, EXPERIENCE, ...).
	KindHeading
	// KindTitle is a bold entry line (job title, degree, project name).
	KindTitle
	// KindSubtle is a muted detail line (period, institution, technologies).
	KindSubtle
	// KindText is a regular paragraph line.
	KindText
	// KindBullets is a bulleted list.
	KindBullets
)

// Block is one renderer-agnostic element of the derived layout.
type Block struct {
	Kind  Kind
	Text  string
	Items []string
}

// ErrPrecondition signals a document missing the substructure the header
// dereferences unconditionally. Normalization upstream should prevent it;
// the renderer fails fast rather than silently dropping the header.
var ErrPrecondition = errors.New("resume document missing contact details")

const skillSeparator = " • "

// Layout derives the block sequence for a resume document. Section order is
// fixed: header, summary, skills, experience, education, certifications,
// projects. Empty sections produce no blocks at all, headings included.
func Layout(doc resume.Document) ([]Block, error) {
	if doc.Contact == nil {
		return nil, ErrPrecondition
	}

	blocks := []Block{{Kind: KindName, Text: doc.FullName}}
	if doc.Location != "" {
		blocks = append(blocks, Block{Kind: KindContactLine, Text: doc.Location})
	}
	blocks = append(blocks, Block{Kind: KindContactLine, Text: doc.Contact.Email + " | " + doc.Contact.Phone})
	if doc.Contact.LinkedIn != "" {
		blocks = append(blocks, Block{Kind: KindContactLine, Text: doc.Contact.LinkedIn})
	}

	if doc.Summary != "" {
		blocks = append(blocks,
			Block{Kind: KindHeading, Text: "PROFESSIONAL SUMMARY"},
			Block{Kind: KindText, Text: doc.Summary},
		)
	}

	if len(doc.Skills) > 0 {
		blocks = append(blocks,
			Block{Kind: KindHeading, Text: "SKILLS"},
			Block{Kind: KindText, Text: strings.Join(doc.Skills, skillSeparator)},
		)
	}

	if len(doc.Experience) > 0 {
		blocks = append(blocks, Block{Kind: KindHeading, Text: "EXPERIENCE"})
		for _, exp := range doc.Experience {
			blocks = append(blocks,
				Block{Kind: KindTitle, Text: exp.Title + " - " + exp.Company},
				Block{Kind: KindSubtle, Text: exp.Period},
			)
			if len(exp.Description) > 0 {
				blocks = append(blocks, Block{Kind: KindBullets, Items: exp.Description})
			}
		}
	}

	if len(doc.Education) > 0 {
		blocks = append(blocks, Block{Kind: KindHeading, Text: "EDUCATION"})
		for _, edu := range doc.Education {
			blocks = append(blocks,
				Block{Kind: KindTitle, Text: edu.Degree},
				Block{Kind: KindSubtle, Text: edu.Institution + " - " + edu.Year},
			)
		}
	}

	if len(doc.Certifications) > 0 {
		blocks = append(blocks,
			Block{Kind: KindHeading, Text: "CERTIFICATIONS"},
			Block{Kind: KindBullets, Items: doc.Certifications},
		)
	}

	if len(doc.Projects) > 0 {
		blocks = append(blocks, Block{Kind: KindHeading, Text: "PROJECTS"})
		for _, proj := range doc.Projects {
			blocks = append(blocks,
				Block{Kind: KindTitle, Text: proj.Name},
				Block{Kind: KindText, Text: proj.Description},
				Block{Kind: KindSubtle, Text: "Technologies: " + strings.Join(proj.Technologies, ", ")},
			)
		}
	}

	return blocks, nil
}

// CoverLetterLayout derives the block sequence for a cover letter: a reduced
// header (name, optional email/phone and location) followed by the body
// paragraphs verbatim.
func CoverLetterLayout(doc resume.Document, body string) ([]Block, error) {
	if doc.Contact == nil {
		return nil, ErrPrecondition
	}

	blocks := []Block{{Kind: KindName, Text: doc.FullName}}
	if doc.Contact.Email != "" || doc.Contact.Phone != "" {
		blocks = append(blocks, Block{Kind: KindContactLine, Text: doc.Contact.Email + " | " + doc.Contact.Phone})
	}
	if doc.Location != "" {
		blocks = append(blocks, Block{Kind: KindContactLine, Text: doc.Location})
	}

	for _, para := range splitParagraphs(body) {
		blocks = append(blocks, Block{Kind: KindText, Text: para})
	}
	return blocks, nil
}

// splitParagraphs breaks a letter body on blank lines. Line endings are
// normalized first so CRLF input paragraphs the same as LF.
func splitParagraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")

	var out []string
	for _, para := range paragraphBreak.Split(strings.TrimSpace(body), -1) {
		if trimmed := strings.TrimSpace(para); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)
