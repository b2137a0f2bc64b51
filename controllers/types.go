package controllers

import (
	"github.com/where-app/api-go/engine"
	"github.com/where-app/api-go/utils"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// identityOf maps the auth context to an engine identity; requests without
// a session act as the anonymous user.
func identityOf(user *utils.UserClaims) engine.Identity {
	if user == nil {
		return engine.Anonymous()
	}
	return engine.Identity{
		UserID:      user.UserID,
		Username:    user.Username,
		IsAnonymous: user.IsAnonymous,
	}
}

// refreshTotals updates the cached point totals of everyone touched by a
// ledger mutation. Cache refresh failures don't fail the request; the
// ledger already holds the truth.
func refreshTotals(ledger *engine.Ledger, userIDs ...string) {
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		if id == "" || id == engine.AnonymousID || seen[id] {
			continue
		}
		seen[id] = true
		ledger.RefreshCachedTotal(id)
	}
}
