// Package metamodel builds configuration-source-aware metadata models.
//
// A model describes entity types and their properties, each carrying
// annotations: named configuration facts stamped with the source that
// produced them. Three sources contribute facts to the same elements,
// in fixed precedence order:
//
//   - [conf.Convention]: derived automatically by convention passes
//   - [conf.DataAnnotation]: declared through schema struct tags
//   - [conf.Explicit]: declared directly through builder calls
//
// The builders resolve conflicts deterministically: a higher-ranked
// source replaces a lower-ranked fact, a lower-ranked write is silently
// rejected, and re-applying an identical value merely promotes its
// provenance. Conventions can therefore re-derive the whole model on
// every build without disturbing anything a user configured.
//
// # Quick Start
//
//	m := meta.NewModel()
//	b := metamodel.NewBuilder(m)
//	b.Entity("User").
//	    Table("app_users").
//	    Property("Email").Unique().MaxLen(255)
//
//	if err := convention.Default().Apply(b); err != nil {
//	    // broken model invariants; precedence races never error
//	}
//
// Schema structs can also be loaded from Go packages with
// [compiler/load], which turns `model:"..."` struct tags into
// data-annotation-ranked facts, and the resolved model can be emitted as
// typed constants with [compiler/gen] or serialized with [snapshot].
package metamodel
