// Package policy maps an actor and a requested status filter onto the
// effective query predicate. It is a pure function with no storage
// dependencies, so every role/visibility rule is unit-testable in
// isolation.
package policy

import (
	"newsdesk/internal/article/models"
	"newsdesk/pkg/domain"
)

// StatusAll and StatusTrash are virtual filter values accepted from
// callers; they never appear on an article.
const (
	StatusAll   = "all"
	StatusTrash = "trash"
)

// Predicate is the role-derived part of a list query, consumed by the
// query service and the stores.
type Predicate struct {
	// Status filters on editorial status when non-empty.
	Status models.Status
	// Author restricts results to one author when non-nil.
	Author *domain.UserID
	// Deleted selects the trash view when true; default listings always
	// pin IsDeleted=false.
	Deleted bool
}

// ForList derives the effective predicate for a list query.
//
// Precedence:
//  1. Guests are forced to published, whatever they asked for.
//  2. Editors and superadmins get what they ask for ("all" drops the
//     status filter, "trash" switches to deleted-only), defaulting to
//     published so admin sessions don't leak drafts into public feeds.
//  3. Writers see the published feed freely; "all" pins the author filter
//     to themselves; any other status pins both that status and
//     author=self.
//
// IsDeleted=false is always applied except on the explicit trash branch.
func ForList(actor *domain.Actor, requestedStatus string) Predicate {
	if actor == nil {
		return Predicate{Status: models.StatusPublished}
	}

	switch actor.Role {
	case domain.RoleEditor, domain.RoleSuperadmin:
		switch requestedStatus {
		case "":
			return Predicate{Status: models.StatusPublished}
		case StatusAll:
			return Predicate{}
		case StatusTrash:
			return Predicate{Deleted: true}
		default:
			return Predicate{Status: models.Status(requestedStatus)}
		}

	case domain.RoleWriter:
		self := actor.ID
		switch requestedStatus {
		case "", string(models.StatusPublished):
			return Predicate{Status: models.StatusPublished}
		case StatusAll:
			return Predicate{Author: &self}
		default:
			return Predicate{Status: models.Status(requestedStatus), Author: &self}
		}
	}

	// Unknown role: treat like a guest.
	return Predicate{Status: models.StatusPublished}
}

// ForStats derives the base predicate for the stats endpoint: writers only
// ever see numbers for their own articles.
func ForStats(actor *domain.Actor) Predicate {
	if actor != nil && actor.Role == domain.RoleWriter {
		self := actor.ID
		return Predicate{Author: &self}
	}
	return Predicate{}
}
