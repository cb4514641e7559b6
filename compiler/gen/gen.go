package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/metamodel/meta"
)

const defaultHeader = "Code generated by metamodel. DO NOT EDIT."

// Generator emits Go source for a resolved model.
type Generator struct {
	model   *meta.Model
	cfg     Config
	workers int
}

// NewGenerator creates a generator for the given model.
//
// Example:
//
//	g, err := gen.NewGenerator(model,
//	    gen.WithTarget("./model"),
//	    gen.WithPackage("github.com/org/project/model"),
//	)
//	if err != nil { ... }
//	err = g.Generate(ctx)
func NewGenerator(m *meta.Model, opts ...Option) (*Generator, error) {
	cfg := Config{Header: defaultHeader}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Target == "" {
		return nil, NewConfigError("Target", nil, "no target directory set: use WithTarget()")
	}
	return &Generator{
		model:   m,
		cfg:     cfg,
		workers: runtime.GOMAXPROCS(0),
	}, nil
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// Generate emits all files with parallel execution and streaming writes.
// Entities annotated with meta.Ignore are skipped.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return err
	}

	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	for _, et := range g.model.Entities() {
		if Ignored(et) {
			continue
		}
		et := et // capture loop variable for goroutine closures
		errg.Go(func() error {
			if err := g.writeEntity(et); err != nil {
				return &GenError{Entity: et.Name(), Cause: err}
			}
			return nil
		})
	}

	errg.Go(func() error {
		return g.writeModelFile()
	})

	return errg.Wait()
}

// writeEntity emits the constants subpackage of one entity.
func (g *Generator) writeEntity(et *meta.EntityType) error {
	pkg := strings.ToLower(et.Name())
	f := jen.NewFile(pkg)
	f.HeaderComment(g.cfg.Header)
	if comment := annotationString(et, meta.Comment); comment != "" {
		f.PackageComment(comment)
	}

	defs := []jen.Code{
		jen.Comment("Table is the storage table of the entity."),
		jen.Id("Table").Op("=").Lit(Table(et)),
	}
	var columns []jen.Code
	for _, p := range et.Properties() {
		if Ignored(p) {
			continue
		}
		col := Column(p)
		defs = append(defs,
			jen.Commentf("Field%s is the column of property %s.", p.Name(), p.Name()),
			jen.Id("Field"+p.Name()).Op("=").Lit(col),
		)
		columns = append(columns, jen.Lit(col))
	}
	f.Const().Defs(defs...)

	f.Comment("Columns holds all columns of the entity table.")
	f.Var().Id("Columns").Op("=").Index().String().Values(columns...)

	dir := filepath.Join(g.cfg.Target, pkg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	out, err := os.Create(filepath.Join(dir, pkg+".go"))
	if err != nil {
		return err
	}
	defer out.Close()

	// Jennifer renders with correct imports and formatting.
	return f.Render(out)
}

// Table resolves the table name of an entity: the TableName annotation
// when present, else the lower-cased entity name.
func Table(et *meta.EntityType) string {
	if name := annotationString(et, meta.TableName); name != "" {
		return name
	}
	return strings.ToLower(et.Name())
}

// Column resolves the column name of a property: the ColumnName
// annotation when present, else the lower-cased property name.
func Column(p *meta.Property) string {
	if name := annotationString(p, meta.ColumnName); name != "" {
		return name
	}
	return strings.ToLower(p.Name())
}

// Ignored reports whether the element carries the Ignore annotation.
func Ignored(a meta.Annotatable) bool {
	ann, ok := a.FindAnnotation(meta.Ignore)
	if !ok {
		return false
	}
	ignored, _ := ann.Value.(bool)
	return ignored
}

// annotationString returns the string value of the named annotation, or
// "" when it is absent or not a string.
func annotationString(a meta.Annotatable, name string) string {
	ann, ok := a.FindAnnotation(name)
	if !ok {
		return ""
	}
	s, _ := ann.Value.(string)
	return s
}

// Generate is a convenience function creating a generator and running it.
func Generate(ctx context.Context, m *meta.Model, opts ...Option) error {
	g, err := NewGenerator(m, opts...)
	if err != nil {
		return err
	}
	return g.Generate(ctx)
}
