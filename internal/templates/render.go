package templates

import (
	"fmt"
	"strings"
)

// Render produces the invite body: the template description followed by a
// numbered agenda block, with {{name}} placeholders substituted from vars.
//
// Substitution is a single linear pass over the text. Placeholders are matched
// literally against the variable map; a variable value that itself contains
// {{...}} is emitted verbatim and never re-expanded. Unknown placeholders are
// left in place.
func Render(template Template, vars map[string]string) string {
	var body strings.Builder
	body.WriteString(template.Description)

	if len(template.Agenda) > 0 {
		body.WriteString("\n\nAgenda:\n")
		for i, item := range template.Agenda {
			fmt.Fprintf(&body, "%d. %s\n", i+1, item)
		}
	}

	return Substitute(body.String(), vars)
}

// RenderTitle substitutes placeholders in the template title.
func RenderTitle(template Template, vars map[string]string) string {
	return Substitute(template.Title, vars)
}

// Substitute replaces {{name}} tokens in text with values from vars in one
// linear pass.
func Substitute(text string, vars map[string]string) string {
	var out strings.Builder
	out.Grow(len(text))

	for {
		open := strings.Index(text, "{{")
		if open < 0 {
			out.WriteString(text)
			return out.String()
		}
		closing := strings.Index(text[open:], "}}")
		if closing < 0 {
			out.WriteString(text)
			return out.String()
		}
		closing += open

		out.WriteString(text[:open])
		name := text[open+2 : closing]
		if value, ok := vars[name]; ok {
			out.WriteString(value)
		} else {
			out.WriteString(text[open : closing+2])
		}
		text = text[closing+2:]
	}
}
