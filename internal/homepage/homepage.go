// Package homepage owns the front-page slot configuration: one hero
// article plus an ordered list of sub-featured articles. The article
// workflow consults it when deleting so the front page never points at a
// missing piece. Curation UI is out of scope; slots are managed through
// the service API.
package homepage

import (
	"time"

	"newsdesk/pkg/domain"
)

// MaxSubFeatured caps the sub-featured list.
const MaxSubFeatured = 6

// Config is the homepage slot singleton.
type Config struct {
	Hero        *domain.ArticleID  `json:"hero,omitempty"`
	SubFeatured []domain.ArticleID `json:"sub_featured"`

	UpdatedBy *domain.UserID `json:"updated_by,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Occupies reports whether the article holds the hero slot or any
// sub-featured slot.
func (c *Config) Occupies(id domain.ArticleID) bool {
	if c.Hero != nil && *c.Hero == id {
		return true
	}
	for _, sub := range c.SubFeatured {
		if sub == id {
			return true
		}
	}
	return false
}

// Remove clears the article from every slot it holds and reports whether
// anything changed.
func (c *Config) Remove(id domain.ArticleID) bool {
	var changed bool
	if c.Hero != nil && *c.Hero == id {
		c.Hero = nil
		changed = true
	}
	kept := c.SubFeatured[:0]
	for _, sub := range c.SubFeatured {
		if sub == id {
			changed = true
			continue
		}
		kept = append(kept, sub)
	}
	c.SubFeatured = kept
	return changed
}

// Clone returns a detached copy.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Hero != nil {
		hero := *c.Hero
		cp.Hero = &hero
	}
	if c.UpdatedBy != nil {
		id := *c.UpdatedBy
		cp.UpdatedBy = &id
	}
	cp.SubFeatured = append([]domain.ArticleID(nil), c.SubFeatured...)
	return &cp
}
