package snapshot_test

import (
	"testing"

	"github.com/syssam/metamodel"
	"github.com/syssam/metamodel/builder"
	"github.com/syssam/metamodel/conf"
	"github.com/syssam/metamodel/meta"
	"github.com/syssam/metamodel/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildModel(t *testing.T) *builder.ModelBuilder {
	t.Helper()
	b := metamodel.New()
	b.Annotation("table_prefix", "app_")
	eb := b.Entity("User").Table("users").Comment("User holds one account.")
	eb.Metadata().SetIdent("schema.User")
	pb := eb.Property("Email").Type(meta.TypeInfo{Kind: "string"}).Unique()
	require.True(t, pb.SetAnnotation(meta.ColumnName, "email_address", conf.DataAnnotation))
	require.True(t, eb.SetAnnotation(meta.DisplayName, "Account", conf.Convention))
	return b
}

// TestTake tests capturing a model.
func TestTake(t *testing.T) {
	t.Parallel()

	s := snapshot.Take(buildModel(t).Metadata())

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	require.Len(t, s.Entities, 1)
	assert.Equal(t, "User", s.Entities[0].Name)
	assert.Equal(t, "schema.User", s.Entities[0].Ident)
	require.Len(t, s.Entities[0].Properties, 1)

	// Sources travel with the values.
	bySource := make(map[string]string)
	for _, ann := range s.Entities[0].Annotations {
		bySource[ann.Name] = ann.Source
	}
	assert.Equal(t, "explicit", bySource[meta.TableName])
	assert.Equal(t, "convention", bySource[meta.DisplayName])
}

// TestRoundTrip tests both encodings.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		s := snapshot.Take(buildModel(t).Metadata())
		data, err := s.EncodeYAML()
		require.NoError(t, err)

		decoded, err := snapshot.DecodeYAML(data)
		require.NoError(t, err)
		assert.Equal(t, s.ID, decoded.ID)
		assert.Equal(t, s.Entities, decoded.Entities)
	})

	t.Run("msgpack", func(t *testing.T) {
		s := snapshot.Take(buildModel(t).Metadata())
		data, err := s.Encode()
		require.NoError(t, err)

		decoded, err := snapshot.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, s.ID, decoded.ID)
		require.Len(t, decoded.Entities, 1)
		assert.Equal(t, s.Entities[0].Name, decoded.Entities[0].Name)
	})

	t.Run("decode_garbage", func(t *testing.T) {
		_, err := snapshot.DecodeYAML([]byte("\t:not yaml"))
		require.Error(t, err)
		assert.True(t, metamodel.IsInvalidSnapshot(err))
	})
}

// TestRestore tests replaying a snapshot through the builders.
func TestRestore(t *testing.T) {
	t.Parallel()

	t.Run("into_empty_model", func(t *testing.T) {
		s := snapshot.Take(buildModel(t).Metadata())

		b := metamodel.New()
		require.NoError(t, snapshot.Restore(s, b))

		et := b.Metadata().FindEntity("User")
		require.NotNil(t, et)
		assert.Equal(t, "schema.User", et.Ident())

		tbl, ok := et.FindAnnotation(meta.TableName)
		require.True(t, ok)
		assert.Equal(t, "users", tbl.Value)
		assert.Equal(t, conf.Explicit, tbl.Source, "recorded source is replayed, not re-ranked")

		col, ok := et.FindProperty("Email").FindAnnotation(meta.ColumnName)
		require.True(t, ok)
		assert.Equal(t, conf.DataAnnotation, col.Source)
	})

	t.Run("restore_twice_is_restore_once", func(t *testing.T) {
		s := snapshot.Take(buildModel(t).Metadata())

		b := metamodel.New()
		require.NoError(t, snapshot.Restore(s, b))
		before := snapshot.Take(b.Metadata())

		require.NoError(t, snapshot.Restore(s, b))
		after := snapshot.Take(b.Metadata())
		assert.Equal(t, before.Entities, after.Entities)
		assert.Equal(t, before.Annotations, after.Annotations)
	})

	t.Run("existing_equal_rank_facts_win", func(t *testing.T) {
		s := snapshot.Take(buildModel(t).Metadata())

		b := metamodel.New()
		b.Entity("User").Table("accounts")
		require.NoError(t, snapshot.Restore(s, b))

		tbl, ok := b.Metadata().FindEntity("User").FindAnnotation(meta.TableName)
		require.True(t, ok)
		assert.Equal(t, "accounts", tbl.Value, "restore must not thrash explicit facts already present")
	})

	t.Run("invalid_source", func(t *testing.T) {
		err := snapshot.Restore(&snapshot.Snapshot{
			Entities: []snapshot.Entity{{
				Name:        "User",
				Annotations: []snapshot.Annotation{{Name: "x", Value: 1, Source: "imagined"}},
			}},
		}, metamodel.New())
		require.Error(t, err)
		assert.True(t, metamodel.IsInvalidSnapshot(err))
	})

	t.Run("missing_entity_name", func(t *testing.T) {
		err := snapshot.Restore(&snapshot.Snapshot{Entities: []snapshot.Entity{{}}}, metamodel.New())
		require.Error(t, err)
	})
}
