// Package identity supplies the current actor's id for attribution on every
// written record. The core treats it as read-only context; session lifecycle
// belongs to the auth collaborator.
package identity

import "context"

// Provider returns the current user's id.
type Provider interface {
	UserID(ctx context.Context) (string, error)
}

// Static is a fixed-id provider, used by tests and single-user configs.
type Static string

func (s Static) UserID(context.Context) (string, error) {
	return string(s), nil
}
