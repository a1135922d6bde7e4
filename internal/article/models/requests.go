package models

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CreateArticleRequest is the JSON payload for article creation.
type CreateArticleRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug,omitempty"`
	Intro         string   `json:"intro,omitempty"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt,omitempty"`
	FeaturedImage string   `json:"featured_image"`
	ImageAlt      string   `json:"image_alt,omitempty"`
	Category      string   `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Country       string   `json:"country,omitempty"`

	IsTrending      bool  `json:"is_trending,omitempty"`
	IsFeatured      bool  `json:"is_featured,omitempty"`
	ShowPublishDate *bool `json:"show_publish_date,omitempty"`
	ShowInHomeFeed  *bool `json:"show_in_home_feed,omitempty"`

	PublishNow bool `json:"publish_now,omitempty"`
}

// Validate enforces field lengths and the slug character set before the
// request reaches the domain constructor.
func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&r.Intro, validation.RuneLength(0, 500)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Excerpt, validation.RuneLength(0, 500)),
		validation.Field(&r.FeaturedImage, validation.Required),
		validation.Field(&r.Slug, validation.Match(slugPattern)),
	)
}

// UpdateArticleRequest is the JSON payload for article updates. Pointer
// fields distinguish "not sent" from zero values; omitted fields are left
// untouched.
type UpdateArticleRequest struct {
	Title         *string   `json:"title,omitempty"`
	Slug          *string   `json:"slug,omitempty"`
	Intro         *string   `json:"intro,omitempty"`
	Content       *string   `json:"content,omitempty"`
	Excerpt       *string   `json:"excerpt,omitempty"`
	FeaturedImage *string   `json:"featured_image,omitempty"`
	ImageAlt      *string   `json:"image_alt,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Country       *string   `json:"country,omitempty"`

	IsTrending      *bool `json:"is_trending,omitempty"`
	IsFeatured      *bool `json:"is_featured,omitempty"`
	ShowPublishDate *bool `json:"show_publish_date,omitempty"`
	ShowInHomeFeed  *bool `json:"show_in_home_feed,omitempty"`

	// Status is honored only for editors and superadmins; writer updates
	// silently drop it.
	Status *string `json:"status,omitempty"`
}

// Validate enforces field constraints on the fields that were sent.
func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Required, validation.RuneLength(1, 200))),
		validation.Field(&r.Intro, validation.When(r.Intro != nil, validation.RuneLength(0, 500))),
		validation.Field(&r.Content, validation.When(r.Content != nil, validation.Required)),
		validation.Field(&r.Excerpt, validation.When(r.Excerpt != nil, validation.RuneLength(0, 500))),
		validation.Field(&r.Slug, validation.When(r.Slug != nil, validation.Required, validation.Match(slugPattern))),
	)
}
