package resume

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Document is the canonical resume content owned by a single resume record.
// Array sections default to empty; renderers treat absent and empty alike.
type Document struct {
	FullName       string       `json:"fullName"`
	Location       string       `json:"location"`
	Contact        *Contact     `json:"contact"`
	Summary        string       `json:"summary,omitempty"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
	Projects       []Project    `json:"projects"`
}

// Contact holds the header contact line details.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Experience is one work history entry. Description lines are independent
// bullets; the slice may be empty but is always non-nil after Normalized.
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Project is one portfolio project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ErrMalformed indicates a stored or generated payload could not be decoded
// into a Document.
var ErrMalformed = errors.New("malformed resume document")

// Normalized returns a copy with every nil container replaced by an empty
// one, so downstream renderers can dereference without nil checks.
func (d Document) Normalized() Document {
	out := d
	if out.Contact == nil {
		out.Contact = &Contact{}
	} else {
		contact := *out.Contact
		out.Contact = &contact
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Experience == nil {
		out.Experience = []Experience{}
	}
	for i := range out.Experience {
		if out.Experience[i].Description == nil {
			out.Experience[i].Description = []string{}
		}
	}
	if out.Education == nil {
		out.Education = []Education{}
	}
	if out.Certifications == nil {
		out.Certifications = []string{}
	}
	if out.Projects == nil {
		out.Projects = []Project{}
	}
	for i := range out.Projects {
		if out.Projects[i].Technologies == nil {
			out.Projects[i].Technologies = []string{}
		}
	}
	return out
}

// Decode parses a JSON payload into a normalized Document.
func Decode(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return doc.Normalized(), nil
}

// Encode serializes a Document for the JSONB content column.
func Encode(doc Document) ([]byte, error) {
	return json.Marshal(doc.Normalized())
}
