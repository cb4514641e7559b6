// Package snapshot serializes resolved models, annotations and their
// sources included. Two encodings are supported: YAML for humans and
// version control, msgpack for caches. Restoring replays every fact
// through the builders with merge semantics, so restoring a snapshot
// over a non-empty model is deterministic and restoring it twice is a
// no-op.
package snapshot

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/metamodel"
	"github.com/syssam/metamodel/builder"
	"github.com/syssam/metamodel/conf"
	"github.com/syssam/metamodel/meta"
)

// Snapshot is the serialized form of a model.
type Snapshot struct {
	ID          string       `yaml:"id" msgpack:"id"`
	CreatedAt   time.Time    `yaml:"created_at" msgpack:"created_at"`
	Annotations []Annotation `yaml:"annotations,omitempty" msgpack:"annotations,omitempty"`
	Entities    []Entity     `yaml:"entities,omitempty" msgpack:"entities,omitempty"`
}

// Entity is the serialized form of an entity type.
type Entity struct {
	Name        string       `yaml:"name" msgpack:"name"`
	Ident       string       `yaml:"ident,omitempty" msgpack:"ident,omitempty"`
	Doc         string       `yaml:"doc,omitempty" msgpack:"doc,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" msgpack:"annotations,omitempty"`
	Properties  []Property   `yaml:"properties,omitempty" msgpack:"properties,omitempty"`
}

// Property is the serialized form of a property.
type Property struct {
	Name        string       `yaml:"name" msgpack:"name"`
	Kind        string       `yaml:"kind,omitempty" msgpack:"kind,omitempty"`
	Nillable    bool         `yaml:"nillable,omitempty" msgpack:"nillable,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" msgpack:"annotations,omitempty"`
}

// Annotation is the serialized form of one configuration fact. The
// source travels with the value so that a restore replays each fact at
// its original rank.
type Annotation struct {
	Name   string `yaml:"name" msgpack:"name"`
	Value  any    `yaml:"value" msgpack:"value"`
	Source string `yaml:"source" msgpack:"source"`
}

// Take captures the current state of the model. Enumeration order is the
// store's sorted order, so equal models produce byte-equal snapshots up
// to ID and timestamp.
func Take(m *meta.Model) *Snapshot {
	s := &Snapshot{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Annotations: takeAnnotations(m),
	}
	for _, et := range m.Entities() {
		entity := Entity{
			Name:        et.Name(),
			Ident:       et.Ident(),
			Doc:         et.Doc(),
			Annotations: takeAnnotations(et),
		}
		for _, p := range et.Properties() {
			entity.Properties = append(entity.Properties, Property{
				Name:        p.Name(),
				Kind:        p.Type().Kind,
				Nillable:    p.Type().Nillable,
				Annotations: takeAnnotations(p),
			})
		}
		s.Entities = append(s.Entities, entity)
	}
	return s
}

func takeAnnotations(a meta.Annotatable) []Annotation {
	var anns []Annotation
	for _, ann := range a.Annotations() {
		anns = append(anns, Annotation{
			Name:   ann.Name,
			Value:  ann.Value,
			Source: ann.Source.String(),
		})
	}
	return anns
}

// EncodeYAML encodes the snapshot as YAML.
func (s *Snapshot) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// DecodeYAML decodes a YAML snapshot.
func DecodeYAML(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, metamodel.NewSnapshotError("", "decode yaml", err)
	}
	return &s, nil
}

// Encode encodes the snapshot as msgpack.
func (s *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// Decode decodes a msgpack snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, metamodel.NewSnapshotError("", "decode msgpack", err)
	}
	return &s, nil
}

// Restore replays the snapshot into the builder. Elements are created if
// missing; every annotation is replayed at its recorded source with
// merge semantics, so facts already present on the target at equal rank
// win and a second restore changes nothing.
func Restore(s *Snapshot, b *builder.ModelBuilder) error {
	if err := restoreAnnotations(s.ID, s.Annotations, &b.AnnotatableBuilder); err != nil {
		return err
	}
	for _, entity := range s.Entities {
		if entity.Name == "" {
			return metamodel.NewSnapshotError(s.ID, "entity without a name", nil)
		}
		eb := b.Entity(entity.Name)
		if entity.Ident != "" {
			eb.Metadata().SetIdent(entity.Ident)
		}
		if entity.Doc != "" {
			eb.Metadata().SetDoc(entity.Doc)
		}
		if err := restoreAnnotations(s.ID, entity.Annotations, &eb.AnnotatableBuilder); err != nil {
			return err
		}
		for _, prop := range entity.Properties {
			if prop.Name == "" {
				return metamodel.NewSnapshotError(s.ID, "property without a name", nil)
			}
			pb := eb.Property(prop.Name)
			pb.Type(meta.TypeInfo{Kind: prop.Kind, Nillable: prop.Nillable})
			if err := restoreAnnotations(s.ID, prop.Annotations, &pb.AnnotatableBuilder); err != nil {
				return err
			}
		}
	}
	return nil
}

func restoreAnnotations[M meta.Annotatable](id string, anns []Annotation, b *builder.AnnotatableBuilder[M]) error {
	for _, ann := range anns {
		source, err := conf.Parse(ann.Source)
		if err != nil {
			return metamodel.NewSnapshotError(id, "invalid source", err)
		}
		b.MergeAnnotation(ann.Name, ann.Value, source)
	}
	return nil
}
