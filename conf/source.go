// Package conf defines the configuration-source precedence model used
// throughout the metamodel builders.
//
// Every configuration fact recorded on a model element carries a Source
// describing where it came from. Sources form a fixed total order:
//
//	Convention < DataAnnotation < Explicit
//
// A fact stamped by a higher-ranked source wins over a fact stamped by a
// lower one. Whether a source may replace a fact stamped at the same rank
// is a call-site policy layered on top of Overrides, not part of the
// ordering itself.
package conf

import "fmt"

// Source is a provenance tag for a configuration fact.
type Source int

const (
	// Convention marks configuration inferred automatically by a
	// convention pass.
	Convention Source = iota
	// DataAnnotation marks configuration declared through schema
	// struct tags.
	DataAnnotation
	// Explicit marks configuration declared directly by calling code.
	Explicit
)

// Overrides reports whether a fact from s may replace a fact from other.
// It is reflexive: a source overrides itself. Same-rank replacement policy
// is refined at the call site by the builders.
func (s Source) Overrides(other Source) bool {
	return s >= other
}

// Max returns the higher-ranked of the two sources. It is used to promote
// the provenance of an existing fact when the same value is re-applied
// from a higher-ranked source.
func (s Source) Max(other Source) Source {
	if other > s {
		return other
	}
	return s
}

// Valid reports whether s is one of the defined sources.
func (s Source) Valid() bool {
	return s >= Convention && s <= Explicit
}

// String returns the source name.
func (s Source) String() string {
	switch s {
	case Convention:
		return "convention"
	case DataAnnotation:
		return "data_annotation"
	case Explicit:
		return "explicit"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Parse returns the source named by name.
func Parse(name string) (Source, error) {
	switch name {
	case "convention":
		return Convention, nil
	case "data_annotation":
		return DataAnnotation, nil
	case "explicit":
		return Explicit, nil
	default:
		return 0, fmt.Errorf("conf: unknown source %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler. It allows sources to be
// embedded in YAML and msgpack snapshots by name rather than by rank.
func (s Source) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("conf: cannot marshal invalid source %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Source) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
