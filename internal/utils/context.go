package utils

import (
	"context"
	"errors"

	"github.com/rentdesk/property-management-api/internal/domain"
)

type ContextKey string

const (
	ActorKey ContextKey = "actor"
)

var (
	ErrNoActorInContext = errors.New("no actor found in context")
	ErrInvalidActorType = errors.New("invalid actor type in context")
)

// ActorFromContext returns the authenticated actor placed in the context by
// the auth middleware.
func ActorFromContext(c context.Context) (*domain.Actor, error) {
	v := c.Value(ActorKey)
	if v == nil {
		return nil, ErrNoActorInContext
	}
	actor, ok := v.(*domain.Actor)
	if !ok {
		return nil, ErrInvalidActorType
	}
	return actor, nil
}
