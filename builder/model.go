package builder

import (
	"github.com/syssam/metamodel/conf"
	"github.com/syssam/metamodel/meta"
)

// ModelBuilder is the root construction facade. The fluent methods on it
// and on the element builders it hands out record configuration at
// conf.Explicit, the highest rank, so they always apply and are safe to
// chain. Convention and loader code uses the source-taking methods of
// the embedded AnnotatableBuilder instead.
type ModelBuilder struct {
	AnnotatableBuilder[*meta.Model]
}

// NewModelBuilder returns a builder wrapping the given model. The model
// is merely referenced; constructing a builder has no effect on it.
func NewModelBuilder(m *meta.Model) *ModelBuilder {
	b := &ModelBuilder{}
	b.metadata = m
	b.modelBuilder = b
	return b
}

// Entity returns a builder for the entity type with the given name,
// creating the entity type if it does not exist yet. Each call returns a
// fresh facade over the same underlying element.
func (b *ModelBuilder) Entity(name string) *EntityTypeBuilder {
	eb := &EntityTypeBuilder{}
	eb.metadata = b.metadata.AddEntity(name)
	eb.modelBuilder = b
	return eb
}

// Annotation records a model-level annotation explicitly.
func (b *ModelBuilder) Annotation(name string, value any) *ModelBuilder {
	b.SetAnnotation(name, value, conf.Explicit)
	return b
}

// EntityTypeBuilder configures one entity type.
type EntityTypeBuilder struct {
	AnnotatableBuilder[*meta.EntityType]
}

// Property returns a builder for the property with the given name,
// creating the property if it does not exist yet.
func (b *EntityTypeBuilder) Property(name string) *PropertyBuilder {
	pb := &PropertyBuilder{}
	pb.metadata = b.metadata.AddProperty(name)
	pb.modelBuilder = b.modelBuilder
	return pb
}

// Annotation records an entity-level annotation explicitly.
func (b *EntityTypeBuilder) Annotation(name string, value any) *EntityTypeBuilder {
	b.SetAnnotation(name, value, conf.Explicit)
	return b
}

// Table sets the storage table name explicitly.
func (b *EntityTypeBuilder) Table(name string) *EntityTypeBuilder {
	return b.Annotation(meta.TableName, name)
}

// Comment sets the entity comment explicitly.
func (b *EntityTypeBuilder) Comment(text string) *EntityTypeBuilder {
	return b.Annotation(meta.Comment, text)
}

// Ignore excludes the entity from code generation.
func (b *EntityTypeBuilder) Ignore() *EntityTypeBuilder {
	return b.Annotation(meta.Ignore, true)
}

// PropertyBuilder configures one property.
type PropertyBuilder struct {
	AnnotatableBuilder[*meta.Property]
}

// Annotation records a property-level annotation explicitly.
func (b *PropertyBuilder) Annotation(name string, value any) *PropertyBuilder {
	b.SetAnnotation(name, value, conf.Explicit)
	return b
}

// Type sets the property type info.
func (b *PropertyBuilder) Type(info meta.TypeInfo) *PropertyBuilder {
	b.metadata.SetType(info)
	return b
}

// Column sets the storage column name explicitly.
func (b *PropertyBuilder) Column(name string) *PropertyBuilder {
	return b.Annotation(meta.ColumnName, name)
}

// Unique marks the property as unique.
func (b *PropertyBuilder) Unique() *PropertyBuilder {
	return b.Annotation(meta.Unique, true)
}

// MaxLen bounds the length of a string property.
func (b *PropertyBuilder) MaxLen(n int) *PropertyBuilder {
	return b.Annotation(meta.MaxLength, n)
}

// Default sets the default value of the property.
func (b *PropertyBuilder) Default(v any) *PropertyBuilder {
	return b.Annotation(meta.DefaultValue, v)
}

// Comment sets the property comment explicitly.
func (b *PropertyBuilder) Comment(text string) *PropertyBuilder {
	return b.Annotation(meta.Comment, text)
}
