package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/syssam/metamodel/meta"
)

// modelTmpl renders the shared model file: a registry of entity tables
// and comments for consumers that do not want one import per entity.
var modelTmpl = template.Must(template.New("model").Parse(`// {{.Header}}

package {{.Package}}

// Tables maps entity names to their storage tables.
var Tables = map[string]string{
{{- range .Entities}}
	{{printf "%q" .Name}}: {{printf "%q" .Table}},
{{- end}}
}

// Comments maps entity names to their documentation, when configured.
var Comments = map[string]string{
{{- range .Entities}}
{{- if .Comment}}
	{{printf "%q" .Name}}: {{printf "%q" .Comment}},
{{- end}}
{{- end}}
}
`))

type modelData struct {
	Header   string
	Package  string
	Entities []entityData
}

type entityData struct {
	Name    string
	Table   string
	Comment string
}

// writeModelFile renders the registry through the template and formats
// it with the imports processor before writing, so template output never
// reaches disk unformatted.
func (g *Generator) writeModelFile() error {
	data := modelData{
		Header:  g.cfg.Header,
		Package: g.cfg.pkgName(),
	}
	for _, et := range g.model.Entities() {
		if Ignored(et) {
			continue
		}
		data.Entities = append(data.Entities, entityData{
			Name:    et.Name(),
			Table:   Table(et),
			Comment: annotationString(et, meta.Comment),
		})
	}

	var buf bytes.Buffer
	if err := modelTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render model file: %w", err)
	}

	path := filepath.Join(g.cfg.Target, "model.go")
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format model file: %w", err)
	}
	return os.WriteFile(path, src, 0o644)
}
