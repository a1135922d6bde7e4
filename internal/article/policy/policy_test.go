package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsdesk/internal/article/models"
	"newsdesk/pkg/domain"
)

func writer() *domain.Actor {
	return &domain.Actor{ID: domain.NewUserID(), Role: domain.RoleWriter}
}

func TestForList_Guest(t *testing.T) {
	for _, requested := range []string{"", "published", "draft", "review", "all", "trash", "inactive"} {
		p := ForList(nil, requested)
		assert.Equal(t, models.StatusPublished, p.Status, "guest requesting %q", requested)
		assert.Nil(t, p.Author)
		assert.False(t, p.Deleted)
	}
}

func TestForList_Admins(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleEditor, domain.RoleSuperadmin} {
		actor := &domain.Actor{ID: domain.NewUserID(), Role: role}

		t.Run(string(role)+" defaults to published", func(t *testing.T) {
			p := ForList(actor, "")
			assert.Equal(t, models.StatusPublished, p.Status)
			assert.False(t, p.Deleted)
		})

		t.Run(string(role)+" all drops the status filter", func(t *testing.T) {
			p := ForList(actor, StatusAll)
			assert.Empty(t, p.Status)
			assert.Nil(t, p.Author)
			assert.False(t, p.Deleted)
		})

		t.Run(string(role)+" trash selects deleted", func(t *testing.T) {
			p := ForList(actor, StatusTrash)
			assert.True(t, p.Deleted)
			assert.Empty(t, p.Status)
		})

		t.Run(string(role)+" explicit status honored verbatim", func(t *testing.T) {
			p := ForList(actor, "review")
			assert.Equal(t, models.StatusReview, p.Status)
			assert.Nil(t, p.Author)
		})
	}
}

func TestForList_Writer(t *testing.T) {
	w := writer()

	t.Run("published feed has no author restriction", func(t *testing.T) {
		for _, requested := range []string{"", "published"} {
			p := ForList(w, requested)
			assert.Equal(t, models.StatusPublished, p.Status)
			assert.Nil(t, p.Author)
		}
	})

	t.Run("all pins author to self and drops status", func(t *testing.T) {
		p := ForList(w, StatusAll)
		assert.Empty(t, p.Status)
		if assert.NotNil(t, p.Author) {
			assert.Equal(t, w.ID, *p.Author)
		}
	})

	t.Run("non-published statuses pin both filters", func(t *testing.T) {
		for _, requested := range []string{"draft", "review", "rejected", "inactive"} {
			p := ForList(w, requested)
			assert.Equal(t, models.Status(requested), p.Status)
			if assert.NotNil(t, p.Author, "status %q", requested) {
				assert.Equal(t, w.ID, *p.Author)
			}
			assert.False(t, p.Deleted)
		}
	})

	t.Run("writers never reach the trash view", func(t *testing.T) {
		p := ForList(w, StatusTrash)
		assert.False(t, p.Deleted)
		assert.NotNil(t, p.Author)
	})
}

func TestForList_Deterministic(t *testing.T) {
	w := writer()
	first := ForList(w, "draft")
	second := ForList(w, "draft")
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, *first.Author, *second.Author)
}

func TestForStats(t *testing.T) {
	t.Run("writer stats are author-scoped", func(t *testing.T) {
		w := writer()
		p := ForStats(w)
		if assert.NotNil(t, p.Author) {
			assert.Equal(t, w.ID, *p.Author)
		}
	})

	t.Run("admin stats are global", func(t *testing.T) {
		p := ForStats(&domain.Actor{ID: domain.NewUserID(), Role: domain.RoleEditor})
		assert.Nil(t, p.Author)
	})
}
