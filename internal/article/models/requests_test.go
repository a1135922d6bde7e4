package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateArticleRequest {
	return CreateArticleRequest{
		Title:         "Budget Vote Passes",
		Content:       "<p>The council approved the budget.</p>",
		FeaturedImage: "https://cdn.example.com/vote.jpg",
	}
}

func TestCreateArticleRequest_Validate(t *testing.T) {
	t.Run("accepts a minimal request", func(t *testing.T) {
		require.NoError(t, validCreate().Validate())
	})

	t.Run("requires title, content, and image", func(t *testing.T) {
		err := CreateArticleRequest{}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "content")
		assert.Contains(t, err.Error(), "featured_image")
	})

	t.Run("rejects malformed slugs", func(t *testing.T) {
		req := validCreate()
		req.Slug = "Not A Slug"
		require.Error(t, req.Validate())
	})

	t.Run("title limit counts runes, not bytes", func(t *testing.T) {
		// 150 three-byte runes is 450 bytes; must still pass a 200-rune cap.
		req := validCreate()
		req.Title = strings.Repeat("語", 150)
		require.NoError(t, req.Validate())

		req.Title = strings.Repeat("語", 201)
		require.Error(t, req.Validate())
	})

	t.Run("intro limit counts runes, not bytes", func(t *testing.T) {
		req := validCreate()
		req.Intro = strings.Repeat("é", 500)
		require.NoError(t, req.Validate())

		req.Intro = strings.Repeat("é", 501)
		require.Error(t, req.Validate())
	})
}

func TestUpdateArticleRequest_Validate(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("empty update is valid", func(t *testing.T) {
		require.NoError(t, UpdateArticleRequest{}.Validate())
	})

	t.Run("sent fields are constrained", func(t *testing.T) {
		require.Error(t, UpdateArticleRequest{Title: str("")}.Validate())
		require.Error(t, UpdateArticleRequest{Slug: str("Bad Slug")}.Validate())
		require.Error(t, UpdateArticleRequest{Content: str("")}.Validate())
	})

	t.Run("title limit counts runes, not bytes", func(t *testing.T) {
		require.NoError(t, UpdateArticleRequest{Title: str(strings.Repeat("報", 200))}.Validate())
		require.Error(t, UpdateArticleRequest{Title: str(strings.Repeat("報", 201))}.Validate())
	})
}
