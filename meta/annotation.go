// Package meta holds the in-memory metadata model: annotatable model
// elements (Model, EntityType, Property) and the annotation store they
// embed.
//
// An annotation is a named configuration fact together with the source
// that produced it. The store exposes raw lookup, overwrite, removal and
// deterministic enumeration; all precedence decisions live in package
// builder, which is the only intended writer during model construction.
package meta

import "github.com/syssam/metamodel/conf"

// Annotation is a named configuration fact attached to a model element.
// Annotations are immutable values; the store replaces them wholesale on
// every update, so a held copy never changes underfoot.
type Annotation struct {
	Name   string
	Value  any
	Source conf.Source
}

// Well-known annotation names understood by the built-in conventions, the
// schema loader and the code generator. User code may attach arbitrary
// additional names; these are merely the ones with shared meaning.
const (
	// TableName maps an entity type to its storage table.
	TableName = "table_name"
	// ColumnName maps a property to its storage column.
	ColumnName = "column_name"
	// DisplayName is a human-readable name for an element.
	DisplayName = "display_name"
	// Comment is documentation text attached to an element.
	Comment = "comment"
	// Ignore excludes an element from code generation.
	Ignore = "ignore"
	// Unique marks a property as unique.
	Unique = "unique"
	// MaxLength bounds the length of a string property.
	MaxLength = "max_length"
	// DefaultValue is the default value of a property.
	DefaultValue = "default_value"
)
