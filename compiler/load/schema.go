// Package load extracts schema descriptors from user Go packages and
// replays them into a model builder.
//
// A schema is a plain exported struct. Its fields become properties,
// and `model:"..."` struct tags become configuration facts recorded at
// conf.DataAnnotation. A blank "_" field carries entity-level tags:
//
//	// User holds one account.
//	type User struct {
//	    _     struct{} `model:"table=app_users"`
//	    Email string   `model:"column=email_address,unique,maxlen=255"`
//	    Age   *int     `model:"default=0"`
//	    Seen  bool     `model:"-"`
//	}
//
// Loading is split in two: Config.Load parses packages (possibly in
// parallel) into descriptors, and Build replays descriptors through the
// builders on the calling goroutine, where all precedence decisions are
// made.
package load

import (
	"github.com/syssam/metamodel"
	"github.com/syssam/metamodel/builder"
	"github.com/syssam/metamodel/conf"
	"github.com/syssam/metamodel/meta"
)

// Schema describes one schema struct loaded from a user package.
type Schema struct {
	Name       string      `json:"name,omitempty"`
	Ident      string      `json:"ident,omitempty"` // qualified Go type, e.g. "schema.User"
	Pos        string      `json:"-"`
	Doc        string      `json:"doc,omitempty"`
	Tag        string      `json:"tag,omitempty"` // entity-level tag from the blank field
	Properties []*Property `json:"properties,omitempty"`
}

// Property describes one field of a schema struct.
type Property struct {
	Name     string `json:"name,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Nillable bool   `json:"nillable,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// Build replays the descriptors into the builder. Struct-tag facts are
// recorded at conf.DataAnnotation; facts that lose against explicit
// configuration are skipped silently, per the merge protocol. An error
// reports a malformed descriptor, never a lost precedence race.
func Build(b *builder.ModelBuilder, schemas ...*Schema) error {
	for _, s := range schemas {
		if s.Name == "" {
			return metamodel.NewSchemaError("", "", "schema without a name", nil)
		}
		eb := b.Entity(s.Name)
		eb.Metadata().SetIdent(s.Ident)
		eb.Metadata().SetDoc(s.Doc)

		anns, err := parseTag(s.Tag)
		if err != nil {
			return metamodel.NewSchemaError(s.Name, "", "invalid entity tag", err)
		}
		for _, ann := range anns {
			eb.SetAnnotation(ann.Name, ann.Value, conf.DataAnnotation)
		}

		for _, p := range s.Properties {
			if p.Name == "" {
				return metamodel.NewSchemaError(s.Name, "", "property without a name", nil)
			}
			pb := eb.Property(p.Name)
			pb.Type(meta.TypeInfo{Kind: p.Kind, Nillable: p.Nillable})

			anns, err := parseTag(p.Tag)
			if err != nil {
				return metamodel.NewSchemaError(s.Name, p.Name, "invalid tag", err)
			}
			for _, ann := range anns {
				pb.SetAnnotation(ann.Name, ann.Value, conf.DataAnnotation)
			}
		}
	}
	return nil
}
