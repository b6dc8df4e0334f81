package kernel_test

import (
	"testing"

	"bizza/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownID = "8f14e45f-ceea-4b67-a1a9-0242ac120002"

func TestNewUUID(t *testing.T) {
	t.Run("mints a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("two mints never collide", func(t *testing.T) {
		orderID := kernel.NewUUID()
		proposalID := kernel.NewUUID()

		assert.False(t, orderID.IsEqual(proposalID))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses the canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(knownID)

		require.NoError(t, err)
		assert.Equal(t, knownID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("tolerates the variant spellings the parser accepts", func(t *testing.T) {
		for _, raw := range []string{
			"{8f14e45f-ceea-4b67-a1a9-0242ac120002}",
			"urn:uuid:8f14e45f-ceea-4b67-a1a9-0242ac120002",
			"8f14e45fceea4b67a1a90242ac120002",
		} {
			id, err := kernel.UUIDFromString(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, knownID, id.String())
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"foreman-7",
			"8f14e45f-ceea-4b67-a1a9",
			"8f14e45f-ceea-4b67-a1a9-0242ac120002-tail",
			"zz14e45f-ceea-4b67-a1a9-0242ac120002",
		} {
			_, err := kernel.UUIDFromString(raw)
			require.Error(t, err, raw)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through the binary form the repositories use", func(t *testing.T) {
		original, err := kernel.UUIDFromString(knownID)
		require.NoError(t, err)

		stored := original.Bytes() // what lands in a uuid column
		restored, err := kernel.UUIDFromBytes(stored[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects a truncated slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x8f, 0x14, 0xe4})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects sixteen zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	id := kernel.NewUUID()
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("exposes the underlying google uuid", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("returns a copy, not a window into the value", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same id parsed twice is equal", func(t *testing.T) {
		a, _ := kernel.UUIDFromString(knownID)
		b, _ := kernel.UUIDFromString(knownID)

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("distinct ids are not", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		assert.False(t, a.IsEqual(b))
	})

	t.Run("two zero values compare equal but stay invalid", func(t *testing.T) {
		var a, b kernel.UUID

		assert.True(t, a.IsEqual(b))
		assert.Error(t, a.Validate())
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed id passes", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var id kernel.UUID
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("explicit nil uuid fails too", func(t *testing.T) {
		// Parsing succeeds; it is Validate that refuses the nil id, the same
		// way an order with an unset client id is refused.
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}
