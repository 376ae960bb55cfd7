package llm

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/internal/resume"
)

//go:embed resume_schema.json
var resumeSchema string

// Model output may wrap the JSON in a fenced code block or surround it with
// prose. Extraction is best-effort: first fenced block, else first
// brace-balanced object.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?[ \t]*\n(.*?)\n[ \t]*```")

// ParseModelJSON extracts a resume document from raw model output. The
// candidate object is checked against the resume schema before decoding, so
// structurally wrong output fails as ErrParse instead of producing a
// half-empty document.
func ParseModelJSON(raw string) (resume.Document, error) {
	candidate := extractObject(raw)
	if candidate == "" {
		return resume.Document{}, fmt.Errorf("%w: no JSON object in response", ErrParse)
	}
	if err := validateResumeJSON(candidate); err != nil {
		return resume.Document{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	doc, err := resume.Decode([]byte(candidate))
	if err != nil {
		return resume.Document{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}

func extractObject(raw string) string {
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		if inner := strings.TrimSpace(m[1]); strings.HasPrefix(inner, "{") {
			return inner
		}
	}
	return firstBalancedObject(raw)
}

// firstBalancedObject scans for the first top-level {...} span, honoring
// string literals and escapes so braces inside values do not truncate it.
func firstBalancedObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return ""
}

func validateResumeJSON(candidate string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeSchema),
		gojsonschema.NewStringLoader(candidate),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	var msgs []string
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
