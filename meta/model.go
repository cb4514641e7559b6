package meta

import (
	"slices"
	"strings"
)

// Model is the root metadata element. It owns the entity types of a
// schema and is itself annotatable (model-level annotations apply to the
// schema as a whole, e.g. a shared table-name prefix).
type Model struct {
	annotations

	entities map[string]*EntityType
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{entities: make(map[string]*EntityType)}
}

// FindEntity returns the entity type with the given name, or nil.
func (m *Model) FindEntity(name string) *EntityType {
	return m.entities[name]
}

// AddEntity returns the entity type with the given name, creating it if
// it does not exist yet.
func (m *Model) AddEntity(name string) *EntityType {
	if et, ok := m.entities[name]; ok {
		return et
	}
	et := &EntityType{name: name, model: m, properties: make(map[string]*Property)}
	m.entities[name] = et
	return et
}

// RemoveEntity deletes the entity type with the given name and reports
// whether it existed.
func (m *Model) RemoveEntity(name string) bool {
	if _, ok := m.entities[name]; !ok {
		return false
	}
	delete(m.entities, name)
	return true
}

// Entities returns all entity types sorted by name.
func (m *Model) Entities() []*EntityType {
	ets := make([]*EntityType, 0, len(m.entities))
	for _, et := range m.entities {
		ets = append(ets, et)
	}
	slices.SortFunc(ets, func(x, y *EntityType) int {
		return strings.Compare(x.name, y.name)
	})
	return ets
}

// EntityType describes one entity of the model. It owns its properties
// and holds a back-reference to the model; the model owns the entity
// type for its whole lifetime.
type EntityType struct {
	annotations

	name       string
	ident      string // qualified Go type, e.g. "schema.User"
	doc        string
	model      *Model
	properties map[string]*Property
}

// Name returns the entity type name.
func (e *EntityType) Name() string { return e.name }

// Ident returns the qualified Go type identifier the entity was loaded
// from, or "" for entities declared purely through builders.
func (e *EntityType) Ident() string { return e.ident }

// SetIdent records the qualified Go type identifier.
func (e *EntityType) SetIdent(ident string) { e.ident = ident }

// Doc returns the doc string of the source type, if any.
func (e *EntityType) Doc() string { return e.doc }

// SetDoc records the doc string of the source type.
func (e *EntityType) SetDoc(doc string) { e.doc = doc }

// Model returns the owning model.
func (e *EntityType) Model() *Model { return e.model }

// FindProperty returns the property with the given name, or nil.
func (e *EntityType) FindProperty(name string) *Property {
	return e.properties[name]
}

// AddProperty returns the property with the given name, creating it if
// it does not exist yet.
func (e *EntityType) AddProperty(name string) *Property {
	if p, ok := e.properties[name]; ok {
		return p
	}
	p := &Property{name: name, entity: e}
	e.properties[name] = p
	return p
}

// RemoveProperty deletes the property with the given name and reports
// whether it existed.
func (e *EntityType) RemoveProperty(name string) bool {
	if _, ok := e.properties[name]; !ok {
		return false
	}
	delete(e.properties, name)
	return true
}

// Properties returns all properties sorted by name.
func (e *EntityType) Properties() []*Property {
	ps := make([]*Property, 0, len(e.properties))
	for _, p := range e.properties {
		ps = append(ps, p)
	}
	slices.SortFunc(ps, func(x, y *Property) int {
		return strings.Compare(x.name, y.name)
	})
	return ps
}

// TypeInfo describes the Go type of a property.
type TypeInfo struct {
	Kind     string // e.g. "string", "int64", "time.Time"
	Nillable bool
}

// Property describes one scalar attribute of an entity type.
type Property struct {
	annotations

	name   string
	info   TypeInfo
	entity *EntityType
}

// Name returns the property name.
func (p *Property) Name() string { return p.name }

// Type returns the property type info.
func (p *Property) Type() TypeInfo { return p.info }

// SetType records the property type info.
func (p *Property) SetType(info TypeInfo) { p.info = info }

// Entity returns the owning entity type.
func (p *Property) Entity() *EntityType { return p.entity }

// Interface conformance for all model elements.
var (
	_ Annotatable = (*Model)(nil)
	_ Annotatable = (*EntityType)(nil)
	_ Annotatable = (*Property)(nil)
)
