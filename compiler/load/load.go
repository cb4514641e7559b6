package load

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

// Config configures schema loading.
type Config struct {
	// Patterns are the package patterns passed to the Go loader,
	// e.g. "./schema/...".
	Patterns []string

	// Dir is the working directory of the loader. Empty means the
	// current directory.
	Dir string

	// BuildFlags are extra flags for the underlying build system.
	BuildFlags []string
}

// Load parses the configured packages and extracts a descriptor for
// every exported struct type. Packages are processed in parallel;
// the returned descriptors are sorted by name so that the subsequent
// single-threaded Build phase is deterministic.
func (c *Config) Load(ctx context.Context) ([]*Schema, error) {
	if len(c.Patterns) == 0 {
		return nil, fmt.Errorf("load: no package patterns")
	}
	cfg := &packages.Config{
		Context:    ctx,
		Dir:        c.Dir,
		BuildFlags: c.BuildFlags,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, c.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			return nil, fmt.Errorf("load: package %s: %v", p.PkgPath, p.Errors[0])
		}
	}

	results := make([][]*Schema, len(pkgs))
	errg, _ := errgroup.WithContext(ctx)
	for i, p := range pkgs {
		i, p := i, p // capture loop variables for goroutine closures
		errg.Go(func() error {
			results[i] = packageSchemas(p)
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}

	var schemas []*Schema
	for _, r := range results {
		schemas = append(schemas, r...)
	}
	slices.SortFunc(schemas, func(a, b *Schema) int {
		return strings.Compare(a.Name, b.Name)
	})
	return schemas, nil
}

// packageSchemas extracts descriptors for the exported struct types of a
// single package.
func packageSchemas(p *packages.Package) []*Schema {
	docs := typeDocs(p)
	scope := p.Types.Scope()

	var schemas []*Schema
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		tn, ok := obj.(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		s := &Schema{
			Name:  name,
			Ident: p.Name + "." + name,
			Doc:   docs[name],
		}
		if pos := p.Fset.Position(obj.Pos()); pos.IsValid() {
			s.Pos = pos.String()
		}
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			tag := reflect.StructTag(st.Tag(i)).Get(TagKey)
			if f.Name() == "_" {
				// Blank marker field carries entity-level options.
				s.Tag = tag
				continue
			}
			if !f.Exported() || f.Embedded() {
				continue
			}
			ftype := f.Type()
			nillable := false
			if ptr, ok := ftype.(*types.Pointer); ok {
				nillable = true
				ftype = ptr.Elem()
			}
			s.Properties = append(s.Properties, &Property{
				Name:     f.Name(),
				Kind:     types.TypeString(ftype, types.RelativeTo(p.Types)),
				Nillable: nillable,
				Tag:      tag,
			})
		}
		schemas = append(schemas, s)
	}
	return schemas
}

// typeDocs maps type names to their doc strings.
func typeDocs(p *packages.Package) map[string]string {
	docs := make(map[string]string)
	for _, f := range p.Syntax {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if doc != nil {
					docs[ts.Name.Name] = strings.TrimSpace(doc.Text())
				}
			}
		}
	}
	return docs
}
