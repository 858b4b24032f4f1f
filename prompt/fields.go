package prompt

import "strings"

// Field is the outcome of parsing one information-template label: the key
// used in the generated profile object and the human-readable label.
type Field struct {
	Key   string
	Label string
}

// ParseFieldLabel derives a profile field from a template label. A label of
// the form "Core Role (coreRole)" yields {Key: "coreRole", Label: "Core Role"}.
// Without a parenthesized key, the key is the label lowercased with spaces
// replaced by underscores.
func ParseFieldLabel(label string) Field {
	label = strings.TrimSpace(label)

	if open := strings.LastIndex(label, "("); open >= 0 {
		if closing := strings.Index(label[open:], ")"); closing >= 0 {
			key := strings.TrimSpace(label[open+1 : open+closing])
			name := strings.TrimSpace(label[:open])
			if key != "" && name != "" {
				return Field{Key: key, Label: name}
			}
		}
	}

	return Field{
		Key:   strings.ReplaceAll(strings.ToLower(label), " ", "_"),
		Label: label,
	}
}
