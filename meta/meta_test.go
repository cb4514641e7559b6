package meta_test

import (
	"testing"

	"github.com/syssam/metamodel/conf"
	"github.com/syssam/metamodel/meta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnnotationStore tests the raw store primitives shared by all model
// elements.
func TestAnnotationStore(t *testing.T) {
	t.Parallel()

	t.Run("find_missing", func(t *testing.T) {
		m := meta.NewModel()
		_, ok := m.FindAnnotation("absent")
		assert.False(t, ok)
	})

	t.Run("set_and_find", func(t *testing.T) {
		m := meta.NewModel()
		m.SetAnnotation(meta.Annotation{Name: "prefix", Value: "app_", Source: conf.Explicit})

		ann, ok := m.FindAnnotation("prefix")
		require.True(t, ok)
		assert.Equal(t, "app_", ann.Value)
		assert.Equal(t, conf.Explicit, ann.Source)
	})

	t.Run("set_replaces_wholesale", func(t *testing.T) {
		m := meta.NewModel()
		m.SetAnnotation(meta.Annotation{Name: "prefix", Value: "a_", Source: conf.Convention})
		m.SetAnnotation(meta.Annotation{Name: "prefix", Value: "b_", Source: conf.Explicit})

		ann, ok := m.FindAnnotation("prefix")
		require.True(t, ok)
		assert.Equal(t, "b_", ann.Value)
		assert.Equal(t, conf.Explicit, ann.Source)
		assert.Len(t, m.Annotations(), 1)
	})

	t.Run("remove", func(t *testing.T) {
		m := meta.NewModel()
		m.SetAnnotation(meta.Annotation{Name: "prefix", Value: "a_"})
		m.RemoveAnnotation("prefix")

		_, ok := m.FindAnnotation("prefix")
		assert.False(t, ok)
	})

	t.Run("enumeration_is_sorted", func(t *testing.T) {
		m := meta.NewModel()
		m.SetAnnotation(meta.Annotation{Name: "zebra"})
		m.SetAnnotation(meta.Annotation{Name: "alpha"})
		m.SetAnnotation(meta.Annotation{Name: "mango"})

		anns := m.Annotations()
		require.Len(t, anns, 3)
		assert.Equal(t, "alpha", anns[0].Name)
		assert.Equal(t, "mango", anns[1].Name)
		assert.Equal(t, "zebra", anns[2].Name)
	})
}

// TestModelElements tests entity and property ownership.
func TestModelElements(t *testing.T) {
	t.Parallel()

	t.Run("add_entity_is_get_or_create", func(t *testing.T) {
		m := meta.NewModel()
		et1 := m.AddEntity("User")
		et2 := m.AddEntity("User")
		assert.Same(t, et1, et2)
		assert.Same(t, m, et1.Model())
	})

	t.Run("entities_sorted", func(t *testing.T) {
		m := meta.NewModel()
		m.AddEntity("Pet")
		m.AddEntity("Car")
		m.AddEntity("User")

		ets := m.Entities()
		require.Len(t, ets, 3)
		assert.Equal(t, "Car", ets[0].Name())
		assert.Equal(t, "Pet", ets[1].Name())
		assert.Equal(t, "User", ets[2].Name())
	})

	t.Run("remove_entity", func(t *testing.T) {
		m := meta.NewModel()
		m.AddEntity("User")
		assert.True(t, m.RemoveEntity("User"))
		assert.False(t, m.RemoveEntity("User"))
		assert.Nil(t, m.FindEntity("User"))
	})

	t.Run("properties", func(t *testing.T) {
		m := meta.NewModel()
		et := m.AddEntity("User")
		p := et.AddProperty("Email")
		p.SetType(meta.TypeInfo{Kind: "string"})

		assert.Same(t, p, et.AddProperty("Email"))
		assert.Same(t, et, p.Entity())
		assert.Equal(t, "string", et.FindProperty("Email").Type().Kind)

		assert.True(t, et.RemoveProperty("Email"))
		assert.Nil(t, et.FindProperty("Email"))
	})

	t.Run("elements_are_annotatable", func(t *testing.T) {
		m := meta.NewModel()
		et := m.AddEntity("User")
		p := et.AddProperty("Email")

		for _, a := range []meta.Annotatable{m, et, p} {
			a.SetAnnotation(meta.Annotation{Name: meta.Comment, Value: "doc", Source: conf.Convention})
			ann, ok := a.FindAnnotation(meta.Comment)
			require.True(t, ok)
			assert.Equal(t, "doc", ann.Value)
		}
	})
}
