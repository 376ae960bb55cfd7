package render

import (
	"errors"
	"strings"
	"testing"

	"resume-builder/internal/resume"
	"resume-builder/internal/templates"
)

func janeDoe() resume.Document {
	return resume.Document{
		FullName:       "Jane Doe",
		Contact:        &resume.Contact{Email: "j@x.com", Phone: "555-1111"},
		Skills:         []string{"Go", "SQL"},
		Experience:     []resume.Experience{},
		Education:      []resume.Education{},
		Certifications: []string{},
		Projects:       []resume.Project{},
	}
}

func TestBothTargetsRenderSameContent(t *testing.T) {
	doc := janeDoe()
	tpl := templates.Lookup("modern")

	preview, err := Preview(doc, tpl)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	print, err := PrintHTML(doc, tpl)
	if err != nil {
		t.Fatalf("PrintHTML: %v", err)
	}

	for _, target := range []struct {
		name string
		out  string
	}{{"preview", preview}, {"print", print}} {
		for _, want := range []string{"Jane Doe", "j@x.com", "555-1111", "Go • SQL"} {
			if !strings.Contains(target.out, want) {
				t.Fatalf("%s missing %q:\n%s", target.name, want, target.out)
			}
		}
		if strings.Contains(target.out, "EXPERIENCE") {
			t.Fatalf("%s rendered heading for empty experience section", target.name)
		}
	}
}

func TestEmptySectionsOmitHeadings(t *testing.T) {
	doc := janeDoe()
	doc.Skills = []string{}

	blocks, err := Layout(doc)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	for _, b := range blocks {
		if b.Kind == KindHeading {
			t.Fatalf("expected no headings for all-empty sections, found %q", b.Text)
		}
	}
}

func TestLayoutSectionOrder(t *testing.T) {
	doc := janeDoe()
	doc.Summary = "Seasoned engineer."
	doc.Experience = []resume.Experience{{Title: "Engineer", Company: "Acme", Period: "2020", Description: []string{"Did work"}}}
	doc.Education = []resume.Education{{Degree: "BSc", Institution: "State", Year: "2019"}}
	doc.Certifications = []string{"CKA"}
	doc.Projects = []resume.Project{{Name: "Tooling", Description: "CLI", Technologies: []string{"Go"}}}

	blocks, err := Layout(doc)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	var headings []string
	for _, b := range blocks {
		if b.Kind == KindHeading {
			headings = append(headings, b.Text)
		}
	}
	want := []string{"PROFESSIONAL SUMMARY", "SKILLS", "EXPERIENCE", "EDUCATION", "CERTIFICATIONS", "PROJECTS"}
	if len(headings) != len(want) {
		t.Fatalf("headings %v, want %v", headings, want)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Fatalf("heading[%d] = %q, want %q", i, headings[i], want[i])
		}
	}
}

func TestExperienceBulletsCarryThrough(t *testing.T) {
	doc := janeDoe()
	doc.Experience = []resume.Experience{{
		Title: "Engineer", Company: "Acme", Period: "2020-2023",
		Description: []string{"Shipped the platform", "Cut latency in half"},
	}}

	out, err := PrintHTML(doc, templates.Default())
	if err != nil {
		t.Fatalf("PrintHTML: %v", err)
	}
	for _, want := range []string{"Engineer - Acme", "2020-2023", "Shipped the platform", "Cut latency in half"} {
		if !strings.Contains(out, want) {
			t.Fatalf("print output missing %q", want)
		}
	}
}

func TestMissingContactFailsFast(t *testing.T) {
	doc := janeDoe()
	doc.Contact = nil

	if _, err := Layout(doc); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
	if _, err := Preview(doc, templates.Default()); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("preview: expected ErrPrecondition, got %v", err)
	}
	if _, err := PrintHTML(doc, templates.Default()); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("print: expected ErrPrecondition, got %v", err)
	}
}

func TestTemplateColorsAppear(t *testing.T) {
	doc := janeDoe()
	tpl := templates.Lookup("creative")

	out, err := Preview(doc, tpl)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if !strings.Contains(out, tpl.Colors.Primary) {
		t.Fatalf("expected primary color %s in preview", tpl.Colors.Primary)
	}
}

func TestCoverLetterLayout(t *testing.T) {
	doc := janeDoe()
	doc.Location = "Portland, OR"
	body := "First paragraph.\n\nSecond paragraph."

	blocks, err := CoverLetterLayout(doc, body)
	if err != nil {
		t.Fatalf("CoverLetterLayout: %v", err)
	}
	if blocks[0].Kind != KindName || blocks[0].Text != "Jane Doe" {
		t.Fatalf("expected name first, got %+v", blocks[0])
	}
	var paragraphs int
	for _, b := range blocks {
		if b.Kind == KindText {
			paragraphs++
		}
		if b.Kind == KindHeading {
			t.Fatal("cover letters carry no section headings")
		}
	}
	if paragraphs != 2 {
		t.Fatalf("expected 2 body paragraphs, got %d", paragraphs)
	}

	crlfBlocks, err := CoverLetterLayout(doc, "First paragraph.\r\n\r\nSecond paragraph.")
	if err != nil {
		t.Fatalf("CoverLetterLayout crlf: %v", err)
	}
	var crlfParagraphs int
	for _, b := range crlfBlocks {
		if b.Kind == KindText {
			crlfParagraphs++
		}
	}
	if crlfParagraphs != 2 {
		t.Fatalf("expected CRLF body to split into 2 paragraphs, got %d", crlfParagraphs)
	}

	out, err := CoverLetterPrintHTML(doc, body, templates.Default())
	if err != nil {
		t.Fatalf("CoverLetterPrintHTML: %v", err)
	}
	for _, want := range []string{"Jane Doe", "Portland, OR", "First paragraph.", "Second paragraph."} {
		if !strings.Contains(out, want) {
			t.Fatalf("cover letter print missing %q", want)
		}
	}
}

func TestMarkupIsEscaped(t *testing.T) {
	doc := janeDoe()
	doc.Summary = `<script>alert("x")</script>`

	out, err := Preview(doc, templates.Default())
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatal("document text must be escaped in markup")
	}
}
