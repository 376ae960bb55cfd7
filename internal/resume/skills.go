package resume

import "strings"

// SplitSkills parses the comma-separated skills textarea into an ordered
// list, trimming whitespace and dropping empty entries.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinSkills renders a skills list back into the textarea form. It is the
// inverse of SplitSkills for lists of non-empty, comma-free entries.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
