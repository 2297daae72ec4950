// Package entity contains the core business objects of the project.
package entity

// Language selects which localized variant of display-facing strings the
// presentation layer renders. The core never branches on it, it only carries
// the selected value through.
type Language string

const (
	// LanguageRU is Russian, the storefront default.
	LanguageRU Language = "ru"
	// LanguageEN is English.
	LanguageEN Language = "en"
	// LanguageUZ is Uzbek.
	LanguageUZ Language = "uz"
)

// String returns the string representation of the Language.
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the Language is a valid value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageRU, LanguageEN, LanguageUZ:
		return true
	default:
		return false
	}
}

// Languages lists every language the storefront ships strings for.
func Languages() []Language {
	return []Language{LanguageRU, LanguageEN, LanguageUZ}
}

// LocalizedText holds one display string per supported language.
type LocalizedText map[Language]string

// In returns the variant for the given language, falling back to Russian
// when the requested variant is missing.
func (t LocalizedText) In(lang Language) string {
	if s, ok := t[lang]; ok {
		return s
	}

	return t[LanguageRU]
}
