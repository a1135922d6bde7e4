package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty string", "", true},
		{"not a uuid", "not-a-uuid", true},
		{"sql injection attempt", "'; DROP TABLE articles;--", true},
		{"null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"oversized input", strings.Repeat("a", 1000), true},
		{"valid lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
		{"valid uppercase", "550E8400-E29B-41D4-A716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errArticle := ParseArticleID(tt.input)
			_, errUser := ParseUserID(tt.input)
			_, errCategory := ParseCategoryID(tt.input)

			// Every ID type runs the same validation.
			if tt.wantErr {
				require.Error(t, errArticle)
				require.Error(t, errUser)
				require.Error(t, errCategory)
			} else {
				require.NoError(t, errArticle)
				require.NoError(t, errUser)
				require.NoError(t, errCategory)
			}
		})
	}
}

func TestIDStringRoundTrip(t *testing.T) {
	id := NewArticleID()
	parsed, err := ParseArticleID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestIDJSONEncoding(t *testing.T) {
	// Typed IDs must serialize as canonical UUID strings, not byte arrays.
	id := NewUserID()
	raw, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(raw))

	var decoded UserID
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, id, decoded)

	var bad UserID
	assert.Error(t, json.Unmarshal([]byte(`"garbage"`), &bad))
}

func TestIDIsNil(t *testing.T) {
	var zero ArticleID
	assert.True(t, zero.IsNil())
	assert.False(t, NewArticleID().IsNil())
	assert.Equal(t, uuid.Nil.String(), zero.String())
}

func TestTypeDistinction(t *testing.T) {
	// These would fail to compile if the ID types were interchangeable:
	// var _ UserID = NewArticleID()
	// var _ ArticleID = NewUserID()
	userID := NewUserID()
	categoryID := NewCategoryID()
	assert.NotEqual(t, uuid.UUID(userID), uuid.UUID(categoryID))
}
