// Package builder provides the mutation facades used to construct a
// metamodel. All annotation writes flow through the source-aware merge
// protocol of AnnotatableBuilder: a write from a higher-ranked source
// replaces a lower-ranked fact, a losing write is reported as a plain
// false and leaves the element untouched, and re-applying an identical
// value only promotes its provenance.
//
// Losing a precedence race is an expected, routine outcome for
// convention passes, which is why it is a boolean and never an error.
package builder

import (
	"reflect"

	"github.com/syssam/metamodel/conf"
	"github.com/syssam/metamodel/meta"
)

// AnnotatableBuilder applies source-aware annotation configuration to a
// single model element. It holds references only: it owns neither the
// element nor the model builder, and any number of builder instances may
// wrap the same element over time without affecting its state.
type AnnotatableBuilder[M meta.Annotatable] struct {
	metadata     M
	modelBuilder *ModelBuilder
}

// Metadata returns the wrapped model element.
func (b *AnnotatableBuilder[M]) Metadata() M {
	return b.metadata
}

// ModelBuilder returns the root builder this builder belongs to.
func (b *AnnotatableBuilder[M]) ModelBuilder() *ModelBuilder {
	return b.modelBuilder
}

// SetAnnotation records the (name, value) fact at the given source and
// reports whether it was applied. A fact recorded at the same source may
// be replaced; use MergeAnnotation for first-writer-wins semantics.
func (b *AnnotatableBuilder[M]) SetAnnotation(name string, value any, source conf.Source) bool {
	return b.setAnnotation(name, value, source, true)
}

// MergeAnnotation records the (name, value) fact at the given source,
// but an existing fact at the same source wins over the incoming one.
// This is the semantics used when importing annotations from another
// element: importing twice is a no-op, independent of order.
func (b *AnnotatableBuilder[M]) MergeAnnotation(name string, value any, source conf.Source) bool {
	return b.setAnnotation(name, value, source, false)
}

func (b *AnnotatableBuilder[M]) setAnnotation(name string, value any, source conf.Source, sameSource bool) bool {
	existing, ok := b.metadata.FindAnnotation(name)
	if !ok {
		b.metadata.SetAnnotation(meta.Annotation{Name: name, Value: value, Source: source})
		return true
	}
	if valueEqual(existing.Value, value) {
		// Same fact re-derived; only the provenance may move, and only
		// upward. No override contest takes place.
		if promoted := existing.Source.Max(source); promoted != existing.Source {
			b.metadata.SetAnnotation(meta.Annotation{Name: name, Value: existing.Value, Source: promoted})
		}
		return true
	}
	if !source.Overrides(existing.Source) {
		return false
	}
	if source == existing.Source && !sameSource {
		return false
	}
	b.metadata.SetAnnotation(meta.Annotation{Name: name, Value: value, Source: source})
	return true
}

// SetOrRemoveAnnotation behaves like SetAnnotation, except that a nil
// value removes the annotation instead of storing nil.
func (b *AnnotatableBuilder[M]) SetOrRemoveAnnotation(name string, value any, source conf.Source) bool {
	if value == nil {
		return b.RemoveAnnotation(name, source)
	}
	return b.SetAnnotation(name, value, source)
}

// CanSetAnnotation replays SetAnnotation without mutating and reports
// whether it would be applied. Callers use it to pre-flight conflicting
// configuration without side effects.
func (b *AnnotatableBuilder[M]) CanSetAnnotation(name string, value any, source conf.Source) bool {
	existing, ok := b.metadata.FindAnnotation(name)
	if !ok || valueEqual(existing.Value, value) {
		return true
	}
	return source.Overrides(existing.Source)
}

// RemoveAnnotation removes the named annotation and reports whether it
// was (or already is) absent afterwards. Removal follows the same
// override discipline as SetAnnotation, but there is no value to
// compare, so no equal-value short-circuit applies.
func (b *AnnotatableBuilder[M]) RemoveAnnotation(name string, source conf.Source) bool {
	if !b.CanRemoveAnnotation(name, source) {
		return false
	}
	b.metadata.RemoveAnnotation(name)
	return true
}

// CanRemoveAnnotation reports whether RemoveAnnotation would succeed.
func (b *AnnotatableBuilder[M]) CanRemoveAnnotation(name string, source conf.Source) bool {
	existing, ok := b.metadata.FindAnnotation(name)
	return !ok || source.Overrides(existing.Source)
}

// MergeAnnotationsFrom imports every annotation of other whose own
// source overrides minimal, replaying each through the merge protocol
// with first-writer-wins semantics at equal rank. Merging the same
// element twice therefore yields the same state as merging it once.
func (b *AnnotatableBuilder[M]) MergeAnnotationsFrom(other meta.Annotatable, minimal conf.Source) {
	for _, ann := range other.Annotations() {
		if !ann.Source.Overrides(minimal) {
			continue
		}
		b.setAnnotation(ann.Name, ann.Value, ann.Source, false)
	}
}

// valueEqual is the value-equality relation of the merge protocol.
func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}
