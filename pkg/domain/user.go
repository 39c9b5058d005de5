package domain

import "github.com/google/uuid"

// UserID identifies the authenticated API caller (the JWT subject).
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID
