package service

import "github.com/google/uuid"

// IDGenerator produces unique opaque book identifiers.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
