// Package usecase defines the application use cases exposed to the delivery layer.
package usecase

import (
	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID    uuid.UUID
	Roles entity.Roles
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(entity.RoleAdmin)
}

// SystemActor is used by scheduled jobs.
var SystemActor = Actor{ID: uuid.Nil, Roles: entity.Roles{entity.RoleAdmin}}
