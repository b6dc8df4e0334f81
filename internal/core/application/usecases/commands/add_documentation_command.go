package commands

import (
	"errors"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var (
	ErrAddDocumentationCommandIsNotConstructed = errors.New(
		"AddDocumentationCommand must be created via NewAddDocumentationCommand constructor",
	)
	ErrFileRefIsRequired = errors.New("file reference is required")
)

// AddDocumentationCommand attaches a photo or file reference to an order as
// work evidence. Entries are append-only.
type AddDocumentationCommand struct { //nolint:recvcheck //using for validation
	documentationID kernel.UUID
	orderID         kernel.UUID
	uploaderID      kernel.UUID
	fileRef         string
	description     string

	guard guard.ConstructorGuard
}

// NewAddDocumentationCommand creates a command to attach work evidence.
func NewAddDocumentationCommand(
	documentationID kernel.UUID,
	orderID kernel.UUID,
	uploaderID kernel.UUID,
	fileRef string,
	description string,
) (AddDocumentationCommand, error) {
	cmd := AddDocumentationCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentationID(documentationID),
		cmd.setOrderID(orderID),
		cmd.setUploaderID(uploaderID),
		cmd.setFileRef(fileRef),
	); err != nil {
		return AddDocumentationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDocumentationCommand) Validate() error {
	return c.guard.Validate(ErrAddDocumentationCommandIsNotConstructed)
}

// DocumentationID returns the new entry's identifier.
func (c AddDocumentationCommand) DocumentationID() kernel.UUID {
	return c.documentationID
}

// OrderID returns the order the evidence belongs to.
func (c AddDocumentationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UploaderID returns the principal recording the entry.
func (c AddDocumentationCommand) UploaderID() kernel.UUID {
	return c.uploaderID
}

// FileRef returns the blob-store reference.
func (c AddDocumentationCommand) FileRef() string {
	return c.fileRef
}

// Description returns the optional caption.
func (c AddDocumentationCommand) Description() string {
	return c.description
}

func (c *AddDocumentationCommand) setDocumentationID(documentationID kernel.UUID) error {
	if err := documentationID.Validate(); err != nil {
		return err
	}

	c.documentationID = documentationID
	return nil
}

func (c *AddDocumentationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddDocumentationCommand) setUploaderID(uploaderID kernel.UUID) error {
	if err := uploaderID.Validate(); err != nil {
		return err
	}

	c.uploaderID = uploaderID
	return nil
}

func (c *AddDocumentationCommand) setFileRef(fileRef string) error {
	if fileRef == "" {
		return ErrFileRefIsRequired
	}

	c.fileRef = fileRef
	return nil
}
