package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "Budget Vote Passes", "budget-vote-passes"},
		{"punctuation collapses", "Mayor: 'No Comment!'", "mayor-no-comment"},
		{"leading and trailing noise", "  --Breaking--  ", "breaking"},
		{"repeated separators", "one  --  two", "one-two"},
		{"already a slug", "city-council-recap", "city-council-recap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestDeriveExcerpt(t *testing.T) {
	t.Run("strips markup and keeps short bodies whole", func(t *testing.T) {
		got := DeriveExcerpt("<p>Council approves <b>budget</b>.</p>")
		assert.Equal(t, "Council approves budget.", got)
	})

	t.Run("truncates long bodies with ellipsis", func(t *testing.T) {
		body := strings.Repeat("a", 300)
		got := DeriveExcerpt(body)
		assert.Equal(t, strings.Repeat("a", 200)+"...", got)
	})

	t.Run("counts runes, not bytes", func(t *testing.T) {
		// 210 two-byte runes: a byte cut at 200 would land mid-rune.
		body := strings.Repeat("é", 210)
		got := DeriveExcerpt(body)
		require.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("é", 200)+"...", got)
	})

	t.Run("cuts on a rune boundary in mixed content", func(t *testing.T) {
		body := strings.Repeat("a", 199) + strings.Repeat("日本語", 20)
		got := DeriveExcerpt(body)
		require.True(t, utf8.ValidString(got))
		assert.Equal(t, 200, utf8.RuneCountInString(strings.TrimSuffix(got, "...")))
	})

	t.Run("multi-byte body under the limit is untouched", func(t *testing.T) {
		body := strings.Repeat("ü", 200)
		assert.Equal(t, body, DeriveExcerpt(body))
	})
}
