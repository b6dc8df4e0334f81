package kernel

import (
	"fmt"

	"bizza/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID,
// i.e. one that did not come out of NewUUID, UUIDFromString or UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies every aggregate and entity in the system: orders, budget
// proposals, team members, reviews, documentation entries. It wraps
// github.com/google/uuid behind a private field so a UUID can only enter the
// domain through a constructor, never by struct literal.
//
// The zero value is invalid on purpose. An order whose client id was never
// set fails Validate instead of silently pointing at the nil UUID.
//
// UUID is an immutable value type and safe to copy and compare.
//
//	proposalID := kernel.NewUUID()
//
//	clientID, err := kernel.UUIDFromString(tokenSubject)
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID mints a random (version 4) identifier. Every create-style command
// handler and HTTP handler that opens a new aggregate goes through here.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form,
// "8f14e45f-ceea-4b67-a1a9-0242ac120002". Used at the boundaries: path
// parameters, token subjects, worker id lists in request bodies.
//
// Returns an error when the input is not a well-formed UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs a UUID from its 16-byte binary form, the shape
// the postgres adapters read back from uuid columns.
//
//	var raw uuid.UUID // scanned from a row
//	id, err := kernel.UUIDFromBytes(raw[:])
//
// A nil UUID in the input fails validation rather than producing an id that
// looks constructed but is not.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// This is what goes into JSON responses, log fields and not-found errors.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID, which the gorm DTOs store
// directly in uuid columns. Slice it (id.Bytes()[:]) when raw bytes are
// needed; domain code should not normally reach through this.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs name the same thing. Aggregates use it
// in their IsEqual methods; identity is the id, not the field values.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value with ErrUUIDIsNotConstructed. Called by
// every aggregate constructor on each id it receives, so a forgotten field
// surfaces at construction time rather than as a nil foreign key later.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
