package load

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/metamodel/meta"
)

// TagKey is the struct-tag key read by the loader.
const TagKey = "model"

// parseTag parses a `model:"..."` tag value into annotation facts. The
// grammar is a comma-separated list of options, each either a bare flag
// or key=value. Values cannot contain commas. The single option "-"
// marks the element as ignored.
func parseTag(tag string) ([]meta.Annotation, error) {
	if tag == "" {
		return nil, nil
	}
	if tag == "-" {
		return []meta.Annotation{{Name: meta.Ignore, Value: true}}, nil
	}
	var anns []meta.Annotation
	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, value, hasValue := strings.Cut(opt, "=")
		ann, err := tagOption(key, value, hasValue)
		if err != nil {
			return nil, err
		}
		anns = append(anns, ann)
	}
	return anns, nil
}

func tagOption(key, value string, hasValue bool) (meta.Annotation, error) {
	switch key {
	case "table":
		return valued(meta.TableName, value, hasValue, key)
	case "column":
		return valued(meta.ColumnName, value, hasValue, key)
	case "comment":
		return valued(meta.Comment, value, hasValue, key)
	case "display":
		return valued(meta.DisplayName, value, hasValue, key)
	case "default":
		return valued(meta.DefaultValue, value, hasValue, key)
	case "maxlen":
		if !hasValue {
			return meta.Annotation{}, fmt.Errorf("option %q requires a value", key)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return meta.Annotation{}, fmt.Errorf("option %q: %w", key, err)
		}
		return meta.Annotation{Name: meta.MaxLength, Value: n}, nil
	case "unique":
		if hasValue {
			return meta.Annotation{}, fmt.Errorf("option %q takes no value", key)
		}
		return meta.Annotation{Name: meta.Unique, Value: true}, nil
	case "ignore":
		if hasValue {
			return meta.Annotation{}, fmt.Errorf("option %q takes no value", key)
		}
		return meta.Annotation{Name: meta.Ignore, Value: true}, nil
	default:
		return meta.Annotation{}, fmt.Errorf("unknown option %q", key)
	}
}

func valued(name, value string, hasValue bool, key string) (meta.Annotation, error) {
	if !hasValue || value == "" {
		return meta.Annotation{}, fmt.Errorf("option %q requires a value", key)
	}
	return meta.Annotation{Name: name, Value: value}, nil
}
