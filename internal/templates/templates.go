// Package templates holds the fixed catalog of visual presets shared by the
// preview and print renderers. The registry is reference data: immutable,
// defined at process start, never user-editable.
package templates

// Colors is the three-color triad a template applies across both render
// targets.
type Colors struct {
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
	Text    string `json:"text"`
}

// Template describes one visual preset.
type Template struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Colors          Colors `json:"colors"`
	PreviewGradient string `json:"previewGradient"`
}

var registry = []Template{
	{
		ID:              "modern",
		Name:            "Modern",
		Description:     "Clean and contemporary with green accents",
		Colors:          Colors{Primary: "#059669", Accent: "#10b981", Text: "#1f2937"},
		PreviewGradient: "from-emerald-500 to-teal-600",
	},
	{
		ID:              "classic",
		Name:            "Classic",
		Description:     "Traditional and professional with blue tones",
		Colors:          Colors{Primary: "#1e40af", Accent: "#3b82f6", Text: "#1f2937"},
		PreviewGradient: "from-blue-600 to-blue-800",
	},
	{
		ID:              "creative",
		Name:            "Creative",
		Description:     "Bold and vibrant with purple and pink",
		Colors:          Colors{Primary: "#7c3aed", Accent: "#a855f7", Text: "#1f2937"},
		PreviewGradient: "from-purple-500 to-pink-600",
	},
	{
		ID:              "minimal",
		Name:            "Minimal",
		Description:     "Simple and elegant with gray tones",
		Colors:          Colors{Primary: "#374151", Accent: "#6b7280", Text: "#1f2937"},
		PreviewGradient: "from-gray-600 to-gray-800",
	},
	{
		ID:              "professional",
		Name:            "Professional",
		Description:     "Corporate and refined with navy blue",
		Colors:          Colors{Primary: "#1e3a8a", Accent: "#2563eb", Text: "#1f2937"},
		PreviewGradient: "from-blue-900 to-indigo-700",
	},
}

// All returns the full registry in display order.
func All() []Template {
	out := make([]Template, len(registry))
	copy(out, registry)
	return out
}

// Default returns the first registry entry.
func Default() Template {
	return registry[0]
}

// Lookup resolves a template id. Unknown ids fall back to the default entry;
// lookup never fails.
func Lookup(id string) Template {
	for _, t := range registry {
		if t.ID == id {
			return t
		}
	}
	return Default()
}
