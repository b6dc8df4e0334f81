package commands

import (
	"errors"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
	"bizza/internal/pkg/guard"
)

var ErrUpdateProgressCommandIsNotConstructed = errors.New(
	"UpdateProgressCommand must be created via NewUpdateProgressCommand constructor",
)

// UpdateProgressCommand records a new completion percentage for an order.
// Reaching 100 completes the order in the same step. The update may carry a
// piece of work evidence that lands in the same transaction.
type UpdateProgressCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	percent int

	evidenceUploaderID kernel.UUID
	evidenceFileRef    string
	evidenceNote       string

	guard guard.ConstructorGuard
}

// NewUpdateProgressCommand creates a command to advance order progress.
func NewUpdateProgressCommand(orderID kernel.UUID, percent int) (UpdateProgressCommand, error) {
	cmd := UpdateProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPercent(percent),
	); err != nil {
		return UpdateProgressCommand{}, err
	}

	return cmd, nil
}

// NewUpdateProgressCommandWithEvidence creates a progress update that also
// attaches a documentation entry for the reported work.
func NewUpdateProgressCommandWithEvidence(
	orderID kernel.UUID,
	percent int,
	uploaderID kernel.UUID,
	fileRef string,
	note string,
) (UpdateProgressCommand, error) {
	cmd := UpdateProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPercent(percent),
		cmd.setEvidence(uploaderID, fileRef, note),
	); err != nil {
		return UpdateProgressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProgressCommandIsNotConstructed)
}

// OrderID returns the order whose progress is being advanced.
func (c UpdateProgressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Percent returns the new completion percentage.
func (c UpdateProgressCommand) Percent() int {
	return c.percent
}

// HasEvidence reports whether the update carries a documentation entry.
func (c UpdateProgressCommand) HasEvidence() bool {
	return c.evidenceFileRef != ""
}

// EvidenceUploaderID returns who attached the evidence.
func (c UpdateProgressCommand) EvidenceUploaderID() kernel.UUID {
	return c.evidenceUploaderID
}

// EvidenceFileRef returns the stored-file reference of the evidence.
func (c UpdateProgressCommand) EvidenceFileRef() string {
	return c.evidenceFileRef
}

// EvidenceNote returns the free-text note accompanying the evidence.
func (c UpdateProgressCommand) EvidenceNote() string {
	return c.evidenceNote
}

func (c *UpdateProgressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateProgressCommand) setEvidence(uploaderID kernel.UUID, fileRef string, note string) error {
	if err := uploaderID.Validate(); err != nil {
		return err
	}
	if fileRef == "" {
		return ErrFileRefIsRequired
	}

	c.evidenceUploaderID = uploaderID
	c.evidenceFileRef = fileRef
	c.evidenceNote = note
	return nil
}

func (c *UpdateProgressCommand) setPercent(percent int) error {
	if percent < 0 || percent > 100 {
		return errs.NewValueIsOutOfRangeError("percent", percent, 0, 100)
	}

	c.percent = percent
	return nil
}
