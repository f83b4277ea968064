package core

import "github.com/google/uuid"

// Entity is an opaque handle, stable for the lifetime of a session
type Entity uuid.UUID

// NoEntity is the zero handle, never issued by NewEntity
var NoEntity Entity

// NewEntity issues a fresh random handle
func NewEntity() Entity {
	return Entity(uuid.New())
}

// IsZero reports whether e is the unset handle
func (e Entity) IsZero() bool {
	return e == NoEntity
}

func (e Entity) String() string {
	return uuid.UUID(e).String()
}

// MarshalText encodes the handle in canonical UUID form
func (e Entity) MarshalText() ([]byte, error) {
	return uuid.UUID(e).MarshalText()
}

// UnmarshalText decodes a canonical UUID
func (e *Entity) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(e).UnmarshalText(data)
}
