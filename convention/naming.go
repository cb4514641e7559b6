package convention

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/metamodel/builder"
	"github.com/syssam/metamodel/conf"
	"github.com/syssam/metamodel/meta"
)

// TableNaming derives table names from entity type names: pluralized
// snake case, so "UserProfile" becomes "user_profiles".
type TableNaming struct{}

// Name implements Convention.
func (TableNaming) Name() string { return "naming/table" }

// Apply implements Convention.
func (TableNaming) Apply(b *builder.ModelBuilder) error {
	for _, et := range b.Metadata().Entities() {
		name := inflect.Underscore(inflect.Pluralize(et.Name()))
		b.Entity(et.Name()).SetAnnotation(meta.TableName, name, conf.Convention)
	}
	return nil
}

// ColumnNaming derives column names from property names: snake case, so
// "CreatedAt" becomes "created_at".
type ColumnNaming struct{}

// Name implements Convention.
func (ColumnNaming) Name() string { return "naming/column" }

// Apply implements Convention.
func (ColumnNaming) Apply(b *builder.ModelBuilder) error {
	for _, et := range b.Metadata().Entities() {
		eb := b.Entity(et.Name())
		for _, p := range et.Properties() {
			pb := eb.Property(p.Name())
			pb.SetAnnotation(meta.ColumnName, inflect.Underscore(p.Name()), conf.Convention)
		}
	}
	return nil
}

// DisplayNaming derives human-readable names for entities and
// properties: "UserProfile" becomes "User Profile".
type DisplayNaming struct{}

// Name implements Convention.
func (DisplayNaming) Name() string { return "naming/display" }

// Apply implements Convention.
func (DisplayNaming) Apply(b *builder.ModelBuilder) error {
	for _, et := range b.Metadata().Entities() {
		eb := b.Entity(et.Name())
		setDisplay(eb, et.Name())
		for _, p := range et.Properties() {
			setDisplay(eb.Property(p.Name()), p.Name())
		}
	}
	return nil
}

// setDisplay writes the display name through the narrow Target surface.
func setDisplay(t Target, ident string) {
	t.SetAnnotation(meta.DisplayName, displayName(ident), conf.Convention)
}

var titleCaser = cases.Title(language.Und)

// displayName turns a Go identifier into spaced title case.
func displayName(ident string) string {
	words := strings.ReplaceAll(inflect.Underscore(ident), "_", " ")
	return titleCaser.String(words)
}

// CommentFromDoc seeds the Comment annotation of an entity from the doc
// string of its source type, when the loader recorded one.
type CommentFromDoc struct{}

// Name implements Convention.
func (CommentFromDoc) Name() string { return "comment/doc" }

// Apply implements Convention.
func (CommentFromDoc) Apply(b *builder.ModelBuilder) error {
	for _, et := range b.Metadata().Entities() {
		if doc := et.Doc(); doc != "" {
			b.Entity(et.Name()).SetAnnotation(meta.Comment, doc, conf.Convention)
		}
	}
	return nil
}

var (
	_ Convention = TableNaming{}
	_ Convention = ColumnNaming{}
	_ Convention = DisplayNaming{}
	_ Convention = CommentFromDoc{}
)
