package usecase

import (
	"context"

	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// actor is the authenticated identity a usecase operation runs as. It is
// resolved from the request context populated by the auth middleware; the
// usecases trust that resolution and perform no authentication themselves.
type actor struct {
	userID    uuid.UUID
	roleID    int
	patientID *uuid.UUID
}

func (a *actor) isStaff() bool {
	return a.roleID == entity.RoleIDStaff
}

func (a *actor) isPatient() bool {
	return a.roleID == entity.RoleIDPatient
}

// ownsPatient reports whether the actor's linked patient record is the given one.
func (a *actor) ownsPatient(patientID uuid.UUID) bool {
	return a.patientID != nil && *a.patientID == patientID
}

func actorFromContext(ctx context.Context) (*actor, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	act := &actor{userID: userID, roleID: roleID}
	if patientID, ok := middleware.GetPatientIDFromContext(ctx); ok {
		act.patientID = &patientID
	}
	return act, nil
}

// requireRole is the explicit capability check invoked at the top of each
// orchestrator operation.
func requireRole(act *actor, allowedRoleIDs ...int) error {
	for _, roleID := range allowedRoleIDs {
		if act.roleID == roleID {
			return nil
		}
	}
	return ErrForbidden
}
