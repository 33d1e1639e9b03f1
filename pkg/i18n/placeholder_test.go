package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devzarghami/translate/pkg/i18n"
)

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		vars     i18n.Vars
		lang     i18n.Language
		expected string
	}{
		{
			name:     "no variables",
			template: "Hello, World!",
			vars:     nil,
			lang:     i18n.English,
			expected: "Hello, World!",
		},
		{
			name:     "single variable",
			template: "Hello, {{name}}!",
			vars:     i18n.Vars{"name": "John"},
			lang:     i18n.English,
			expected: "Hello, John!",
		},
		{
			name:     "multiple variables",
			template: "Welcome, {{name}}! You have {{count}} messages.",
			vars:     i18n.Vars{"name": "Alice", "count": 5},
			lang:     i18n.English,
			expected: "Welcome, Alice! You have 5 messages.",
		},
		{
			name:     "unbound token remains unchanged",
			template: "Hello, {{name}}! Your ID is {{id}}.",
			vars:     i18n.Vars{"name": "Kate"},
			lang:     i18n.English,
			expected: "Hello, Kate! Your ID is {{id}}.",
		},
		{
			name:     "repeated token replaced everywhere",
			template: "{{name}} and {{name}} again",
			vars:     i18n.Vars{"name": "Bob"},
			lang:     i18n.English,
			expected: "Bob and Bob again",
		},
		{
			name:     "case-sensitive names",
			template: "{{Name}} vs {{name}}",
			vars:     i18n.Vars{"name": "low"},
			lang:     i18n.English,
			expected: "{{Name}} vs low",
		},
		{
			name:     "non-string value coerced",
			template: "pi is {{pi}}",
			vars:     i18n.Vars{"pi": 3.14},
			lang:     i18n.English,
			expected: "pi is 3.14",
		},
		{
			name:     "localized value picks active language",
			template: "Hello {{who}}",
			vars: i18n.Vars{"who": i18n.Localized{
				i18n.English: "world",
				i18n.Persian: "دنیا",
			}},
			lang:     i18n.Persian,
			expected: "Hello دنیا",
		},
		{
			name:     "localized value falls back to default language",
			template: "Hello {{who}}",
			vars: i18n.Vars{"who": i18n.Localized{
				i18n.English: "world",
			}},
			lang:     i18n.Persian,
			expected: "Hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := i18n.ReplacePlaceholders(tt.template, tt.vars, tt.lang, i18n.Default)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestLocalizedFor(t *testing.T) {
	t.Parallel()

	t.Run("picks requested language", func(t *testing.T) {
		t.Parallel()
		l := i18n.Localized{i18n.English: "Hello", i18n.Spanish: "Hola"}
		require.Equal(t, "Hola", l.For(i18n.Spanish, i18n.English))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		l := i18n.Localized{i18n.English: "Hello"}
		require.Equal(t, "Hello", l.For(i18n.Persian, i18n.English))
	})

	t.Run("falls back to first non-empty entry", func(t *testing.T) {
		t.Parallel()
		l := i18n.Localized{i18n.German: "Hallo"}
		require.Equal(t, "Hallo", l.For(i18n.Persian, i18n.English))
	})

	t.Run("empty entries treated as absent", func(t *testing.T) {
		t.Parallel()
		l := i18n.Localized{i18n.Persian: "", i18n.German: "Hallo"}
		require.Equal(t, "Hallo", l.For(i18n.Persian, i18n.English))
	})

	t.Run("empty object yields empty string", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", i18n.Localized{}.For(i18n.English, i18n.English))
	})
}
