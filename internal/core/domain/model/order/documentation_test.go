package order_test

import (
	"testing"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentation(t *testing.T) {
	t.Run("creates entry stamped with current time", func(t *testing.T) {
		before := time.Now().UTC()

		doc, err := order.NewDocumentation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blob://site-photos/abc123", "north wall primed",
		)

		require.NoError(t, err)
		require.NoError(t, doc.Validate())
		assert.Equal(t, "blob://site-photos/abc123", doc.FileRef())
		assert.Equal(t, "north wall primed", doc.Description())
		assert.False(t, doc.CreatedAt().Before(before))
	})

	t.Run("rejects empty file reference", func(t *testing.T) {
		_, err := order.NewDocumentation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", "caption",
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid references", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewDocumentation(
			invalidID, kernel.NewUUID(), kernel.NewUUID(), "blob://x", "",
		)

		require.Error(t, err)
	})
}

func TestRestoreDocumentation(t *testing.T) {
	t.Run("preserves original timestamp", func(t *testing.T) {
		recordedAt := time.Date(2025, 2, 14, 15, 30, 0, 0, time.UTC)

		doc, err := order.RestoreDocumentation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blob://site-photos/def456", "", recordedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, recordedAt, doc.CreatedAt())
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := order.RestoreDocumentation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blob://x", "", time.Time{},
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDocumentationValidate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var doc order.Documentation

		require.ErrorIs(t, doc.Validate(), order.ErrDocumentationIsNotConstructed)
	})
}
