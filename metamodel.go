package metamodel

import (
	"github.com/syssam/metamodel/builder"
	"github.com/syssam/metamodel/meta"
)

// NewBuilder returns a model builder over the given model. The model is
// referenced, not owned; several builders may wrap the same model.
func NewBuilder(m *meta.Model) *builder.ModelBuilder {
	return builder.NewModelBuilder(m)
}

// New returns a builder over a fresh empty model.
func New() *builder.ModelBuilder {
	return builder.NewModelBuilder(meta.NewModel())
}
