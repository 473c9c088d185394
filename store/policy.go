package store

import "eventhub-backend/models"

// CanMutate reports whether the actor may mutate or delete a resource owned
// by ownerID: the owner themselves, or any admin.
func CanMutate(actorID uint, actorRole string, ownerID uint) bool {
	return actorID == ownerID || actorRole == models.RoleAdmin
}
