// Package domain holds identifier types and small value objects shared by
// every feature package. Typed IDs prevent accidentally passing an article
// ID where a user ID is expected.
package domain

import "github.com/google/uuid"

type (
	// ArticleID identifies an article.
	ArticleID uuid.UUID
	// UserID identifies a staff user (writer, editor, or superadmin).
	UserID uuid.UUID
	// CategoryID identifies a category.
	CategoryID uuid.UUID
	// AuditID identifies an audit trail entry.
	AuditID uuid.UUID
)

// NewArticleID returns a fresh random article ID.
func NewArticleID() ArticleID { return ArticleID(uuid.New()) }

// NewUserID returns a fresh random user ID.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewCategoryID returns a fresh random category ID.
func NewCategoryID() CategoryID { return CategoryID(uuid.New()) }

// NewAuditID returns a fresh random audit entry ID.
func NewAuditID() AuditID { return AuditID(uuid.New()) }

func (id ArticleID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id ArticleID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id UserID) String() string { return uuid.UUID(id).String() }

func (id CategoryID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id CategoryID) String() string { return uuid.UUID(id).String() }

func (id AuditID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id AuditID) String() string { return uuid.UUID(id).String() }

// Text marshaling keeps IDs as canonical UUID strings in JSON payloads.

func (id ArticleID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *ArticleID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = ArticleID(u)
	return nil
}

func (id UserID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *UserID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = UserID(u)
	return nil
}

func (id CategoryID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *CategoryID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = CategoryID(u)
	return nil
}

func (id AuditID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *AuditID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = AuditID(u)
	return nil
}

// ParseArticleID parses external input into an ArticleID.
func ParseArticleID(s string) (ArticleID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ArticleID{}, err
	}
	return ArticleID(u), nil
}

// ParseUserID parses external input into a UserID.
func ParseUserID(s string) (UserID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(u), nil
}

// ParseCategoryID parses external input into a CategoryID.
func ParseCategoryID(s string) (CategoryID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CategoryID{}, err
	}
	return CategoryID(u), nil
}
