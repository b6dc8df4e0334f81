package order

import (
	"errors"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
)

var (
	// ErrDocumentationIsNotConstructed indicates that the Documentation was not
	// properly initialized through a constructor function.
	ErrDocumentationIsNotConstructed = errors.New("Documentation must be created via NewDocumentation constructor")
)

// Documentation is an append-only evidence entry attached to an order:
// a photo or file reference plus a short description, recorded by the
// foreman while work is underway. Entries are never edited or removed.
//
// The binary content itself lives in external blob storage; the entity
// holds only the stable file reference returned by that store.
type Documentation struct {
	// id uniquely identifies the documentation entry
	id kernel.UUID

	// orderID references the order the evidence belongs to
	orderID kernel.UUID

	// uploaderID references the principal who recorded the entry
	uploaderID kernel.UUID

	// fileRef is the stable reference into external blob storage
	fileRef string

	// description is a short free-text caption
	description string

	// createdAt is when the entry was recorded
	createdAt time.Time

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewDocumentation creates a new evidence entry stamped with the current time.
//
// Parameters:
//   - id: Unique identifier for the entry
//   - orderID: The order the evidence belongs to
//   - uploaderID: The principal recording the entry
//   - fileRef: Stable blob-store reference (must not be empty)
//   - description: Short caption (may be empty)
//
// Returns the entry, or a validation error if any reference is invalid.
func NewDocumentation(
	id kernel.UUID,
	orderID kernel.UUID,
	uploaderID kernel.UUID,
	fileRef string,
	description string,
) (*Documentation, error) {
	return RestoreDocumentation(id, orderID, uploaderID, fileRef, description, time.Now().UTC())
}

// RestoreDocumentation reconstructs an evidence entry from persistent storage,
// preserving its original timestamp.
func RestoreDocumentation(
	id kernel.UUID,
	orderID kernel.UUID,
	uploaderID kernel.UUID,
	fileRef string,
	description string,
	createdAt time.Time,
) (*Documentation, error) {
	doc := &Documentation{
		description: description,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		doc.setID(id),
		doc.setOrderID(orderID),
		doc.setUploaderID(uploaderID),
		doc.setFileRef(fileRef),
		doc.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate ensures the entry was created through a constructor function.
func (d *Documentation) Validate() error {
	if d == nil {
		return ErrDocumentationIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentationIsNotConstructed)
}

// IsEqual compares two entries by their unique identifiers.
func (d *Documentation) IsEqual(other *Documentation) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (d *Documentation) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order the evidence belongs to.
func (d *Documentation) OrderID() kernel.UUID {
	return d.orderID
}

// UploaderID returns the principal who recorded the entry.
func (d *Documentation) UploaderID() kernel.UUID {
	return d.uploaderID
}

// FileRef returns the stable blob-store reference.
func (d *Documentation) FileRef() string {
	return d.fileRef
}

// Description returns the free-text caption.
func (d *Documentation) Description() string {
	return d.description
}

// CreatedAt returns when the entry was recorded.
func (d *Documentation) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Documentation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Documentation) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Documentation) setUploaderID(uploaderID kernel.UUID) error {
	if err := uploaderID.Validate(); err != nil {
		return err
	}
	d.uploaderID = uploaderID
	return nil
}

func (d *Documentation) setFileRef(fileRef string) error {
	if fileRef == "" {
		return errs.NewValueIsRequiredError("fileRef")
	}
	d.fileRef = fileRef
	return nil
}

func (d *Documentation) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	d.createdAt = createdAt
	return nil
}
