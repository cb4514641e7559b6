package metamodel_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/syssam/metamodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSchemaError tests the schema error type.
func TestSchemaError(t *testing.T) {
	t.Parallel()

	t.Run("message_parts", func(t *testing.T) {
		err := metamodel.NewSchemaError("User", "Email", "invalid tag", nil)
		assert.Equal(t, "metamodel: schema error on entity User property Email: invalid tag", err.Error())
	})

	t.Run("entity_only", func(t *testing.T) {
		err := metamodel.NewSchemaError("User", "", "schema without properties", nil)
		assert.Equal(t, "metamodel: schema error on entity User: schema without properties", err.Error())
	})

	t.Run("wraps_cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := metamodel.NewSchemaError("User", "", "invalid tag", cause)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("matches_sentinel", func(t *testing.T) {
		err := metamodel.NewSchemaError("User", "", "bad", nil)
		assert.ErrorIs(t, err, metamodel.ErrInvalidSchema)
		assert.True(t, metamodel.IsInvalidSchema(err))
	})

	t.Run("matches_when_wrapped", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", metamodel.NewSchemaError("User", "", "bad", nil))
		assert.True(t, metamodel.IsInvalidSchema(err))
	})

	t.Run("nil_is_not_invalid_schema", func(t *testing.T) {
		assert.False(t, metamodel.IsInvalidSchema(nil))
	})
}

// TestSnapshotError tests the snapshot error type.
func TestSnapshotError(t *testing.T) {
	t.Parallel()

	t.Run("with_id", func(t *testing.T) {
		err := metamodel.NewSnapshotError("d2c1", "invalid source", nil)
		assert.Equal(t, "metamodel: snapshot d2c1: invalid source", err.Error())
	})

	t.Run("without_id", func(t *testing.T) {
		err := metamodel.NewSnapshotError("", "decode yaml", errors.New("bad indent"))
		assert.Equal(t, "metamodel: snapshot: decode yaml: bad indent", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("bad indent")
		err := metamodel.NewSnapshotError("", "decode yaml", cause)
		require.ErrorIs(t, err, cause)
	})

	t.Run("matches_sentinel", func(t *testing.T) {
		err := metamodel.NewSnapshotError("d2c1", "bad", nil)
		assert.ErrorIs(t, err, metamodel.ErrInvalidSnapshot)
		assert.True(t, metamodel.IsInvalidSnapshot(err))
	})

	t.Run("nil_is_not_invalid_snapshot", func(t *testing.T) {
		assert.False(t, metamodel.IsInvalidSnapshot(nil))
	})
}
