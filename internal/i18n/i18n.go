package i18n

import "strings"

// Translator resolves dotted message keys against the dictionary for the
// selected language, falling back to the raw key when a path is missing.
type Translator struct {
	lang string
}

// New creates a translator; unknown languages fall back to English.
func New(lang string) *Translator {
	t := &Translator{}
	t.SetLanguage(lang)
	return t
}

// Language returns the active language code.
func (t *Translator) Language() string {
	return t.lang
}

// SetLanguage switches the active dictionary.
func (t *Translator) SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	t.lang = lang
}

// Languages lists the available language codes.
func Languages() []string {
	return []string{"en", "de"}
}

// T resolves a dotted key and interpolates {{var}} placeholders from vars.
// Unresolved keys render as themselves so a missing translation is visible
// instead of blank.
func (t *Translator) T(key string, vars map[string]string) string {
	msg := lookup(dictionaries[t.lang], key)
	if msg == "" && t.lang != "en" {
		msg = lookup(dictionaries["en"], key)
	}
	if msg == "" {
		return key
	}
	for name, value := range vars {
		msg = strings.ReplaceAll(msg, "{{"+name+"}}", value)
	}
	return msg
}

func lookup(dict map[string]any, key string) string {
	parts := strings.Split(key, ".")
	current := any(dict)
	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = node[part]
		if !ok {
			return ""
		}
	}
	msg, _ := current.(string)
	return msg
}
