package meta

import (
	"slices"
	"strings"
)

// Annotatable is the storage contract shared by all model elements. It
// exposes the raw primitives the builders are written against: lookup,
// unconditional overwrite, unconditional removal and deterministic
// enumeration. None of these apply precedence rules; that is the
// builders' job.
type Annotatable interface {
	// FindAnnotation returns the annotation with the given name.
	FindAnnotation(name string) (Annotation, bool)

	// SetAnnotation stores ann, replacing any annotation with the same
	// name.
	SetAnnotation(ann Annotation)

	// RemoveAnnotation deletes the annotation with the given name, if
	// present.
	RemoveAnnotation(name string)

	// Annotations returns all annotations sorted by name.
	Annotations() []Annotation
}

// annotations is the store embedded by every model element.
type annotations struct {
	byName map[string]Annotation
}

// FindAnnotation returns the annotation with the given name.
func (a *annotations) FindAnnotation(name string) (Annotation, bool) {
	ann, ok := a.byName[name]
	return ann, ok
}

// SetAnnotation stores ann, replacing any annotation with the same name.
func (a *annotations) SetAnnotation(ann Annotation) {
	if a.byName == nil {
		a.byName = make(map[string]Annotation)
	}
	a.byName[ann.Name] = ann
}

// RemoveAnnotation deletes the annotation with the given name.
func (a *annotations) RemoveAnnotation(name string) {
	delete(a.byName, name)
}

// Annotations returns all annotations sorted by name. Enumeration order
// is not semantically significant, but a stable order keeps snapshots and
// generated code diffable.
func (a *annotations) Annotations() []Annotation {
	anns := make([]Annotation, 0, len(a.byName))
	for _, ann := range a.byName {
		anns = append(anns, ann)
	}
	slices.SortFunc(anns, func(x, y Annotation) int {
		return strings.Compare(x.Name, y.Name)
	})
	return anns
}
