// Package convention implements the convention passes of model building.
//
// A convention derives configuration facts from the shape of the model
// and records them at conf.Convention, the lowest-ranked source. A pass
// may therefore run on every build without ever clobbering configuration
// supplied through struct tags or explicit builder calls: a losing write
// is rejected by the merge protocol and the pass simply moves on.
package convention

import (
	"github.com/syssam/metamodel/builder"
	"github.com/syssam/metamodel/conf"
)

// Target is the narrow annotation surface a convention needs from an
// element builder: attempt a write, pre-flight one, or retract one. All
// element builders satisfy it with the same state and logic that backs
// their full configuration API.
type Target interface {
	SetAnnotation(name string, value any, source conf.Source) bool
	CanSetAnnotation(name string, value any, source conf.Source) bool
	RemoveAnnotation(name string, source conf.Source) bool
}

var (
	_ Target = (*builder.ModelBuilder)(nil)
	_ Target = (*builder.EntityTypeBuilder)(nil)
	_ Target = (*builder.PropertyBuilder)(nil)
)

// Convention is a single model-wide configuration pass.
type Convention interface {
	// Name identifies the convention, e.g. "naming/table".
	Name() string

	// Apply runs the pass against the model. Precedence rejections are
	// not errors; an error aborts the whole pipeline and is reserved
	// for broken model invariants.
	Apply(b *builder.ModelBuilder) error
}

// Pipeline runs conventions in a fixed order on the calling goroutine.
// Model construction is a single-threaded phase; the pipeline adds no
// locking of its own.
type Pipeline struct {
	conventions []Convention
}

// NewPipeline returns a pipeline running the given conventions in order.
func NewPipeline(cs ...Convention) *Pipeline {
	return &Pipeline{conventions: cs}
}

// Append adds conventions to the end of the pipeline.
func (p *Pipeline) Append(cs ...Convention) *Pipeline {
	p.conventions = append(p.conventions, cs...)
	return p
}

// Conventions returns the passes in execution order.
func (p *Pipeline) Conventions() []Convention {
	return p.conventions
}

// Apply runs all passes in order, stopping at the first error.
func (p *Pipeline) Apply(b *builder.ModelBuilder) error {
	for _, c := range p.conventions {
		if err := c.Apply(b); err != nil {
			return err
		}
	}
	return nil
}

// Default returns the built-in pipeline: table and column naming, display
// names and doc-string comments.
func Default() *Pipeline {
	return NewPipeline(
		TableNaming{},
		ColumnNaming{},
		DisplayNaming{},
		CommentFromDoc{},
	)
}
