package i18n

import (
	"golang.org/x/text/language"
)

// Language is a supported language code.
type Language string

// Supported language codes.
const (
	English    Language = "en"
	Persian    Language = "fa"
	Spanish    Language = "es"
	German     Language = "de"
	French     Language = "fr"
	Portuguese Language = "pt"
	Russian    Language = "ru"
	Arabic     Language = "ar"
	Chinese    Language = "zh"
	Japanese   Language = "ja"
)

// Default is the fallback language used when a requested translation or
// language is missing.
const Default = English

var supported = []Language{
	English,
	Persian,
	Spanish,
	German,
	French,
	Portuguese,
	Russian,
	Arabic,
	Chinese,
	Japanese,
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Persian,
	language.Spanish,
	language.German,
	language.French,
	language.Portuguese,
	language.Russian,
	language.Arabic,
	language.Chinese,
	language.Japanese,
})

// Supported returns all supported language codes. The default language is
// always first; the rest keep registry order. The returned slice must not be
// modified.
func Supported() []Language {
	return supported
}

// Valid reports whether lang is one of the supported language codes.
func Valid(lang string) bool {
	for _, l := range supported {
		if Language(lang) == l {
			return true
		}
	}
	return false
}

// Parse normalizes an arbitrary language tag (e.g. "en-US", "FA") to the
// closest supported Language. Unrecognized input yields Default.
func Parse(s string) Language {
	if Valid(s) {
		return Language(s)
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}
