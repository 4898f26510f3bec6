// Package authz centralizes the capability checks invoked by HTTP handlers.
// Handlers never compare roles or IDs inline; they ask these predicates.
package authz

import "controlastock_backend/internal/feature/auth/domain/entity"

// CanManageUser reports whether the actor may update or delete the user
// record with the given ID: the record's own user, or an administrator.
func CanManageUser(actor *entity.User, targetID uint) bool {
	if actor == nil {
		return false
	}
	return actor.ID == targetID || actor.IsAdmin()
}

// CanListUsers reports whether the actor may enumerate all users.
// Restricted to administrators.
func CanListUsers(actor *entity.User) bool {
	return actor != nil && actor.IsAdmin()
}
