// Package authz holds the object-level authorization predicates. Both are
// pure functions so services can consult them without touching the database.
package authz

import "reviewhub/internal/httpapi/models"

// SelfOrAdmin grants access when the requester is an admin or is operating
// on their own account.
func SelfOrAdmin(requester *models.User, targetUserID string) bool {
	if requester == nil {
		return false
	}
	if requester.IsAdmin() {
		return true
	}
	return requester.ID == targetUserID
}

// OwnerOrRead grants unconditional access for read-only actions; for writes
// the requester must own the target entity.
func OwnerOrRead(requester *models.User, ownerID string, write bool) bool {
	if !write {
		return true
	}
	if requester == nil {
		return false
	}
	return requester.ID == ownerID
}
