package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"tomlgen/internal/indexpath"
	"tomlgen/internal/value"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// OutputDir is where generated files are written. Used for the
	// unformatted debug sidecar when formatting fails.
	OutputDir string
}

// Embed is one value to declare in a generated file.
type Embed struct {
	// Name is the Go identifier to declare.
	Name string
	// Path is the index path the value was selected by, kept for the
	// declaration comment.
	Path indexpath.Path
	// Value is the selected manifest value.
	Value value.Value
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// Generator renders generated files from embed declarations.
type Generator struct {
	config Config
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

type declData struct {
	Name    string
	Expr    string
	Const   bool
	Comment string
}

type templateData struct {
	PackageName string
	Imports     []string
	Decls       []declData
}

// Generate renders one generated file declaring every embed, formatted
// with go/format. On a formatting failure the unformatted content is
// written to a debug sidecar and returned alongside the error.
func (g *Generator) Generate(filename string, embeds []Embed) (*GeneratedFile, error) {
	if len(embeds) == 0 {
		return nil, fmt.Errorf("no embeds for %s", filename)
	}

	data := &templateData{PackageName: g.config.PackageName}

	imports := make(map[string]struct{})

	for _, e := range embeds {
		lit := Translate(e.Value)

		for _, imp := range lit.Imports {
			imports[imp] = struct{}{}
		}

		data.Decls = append(data.Decls, declData{
			Name:    e.Name,
			Expr:    lit.Expr,
			Const:   lit.Const,
			Comment: fmt.Sprintf("%s is the value at %s in Cargo.toml.", e.Name, e.Path),
		})
	}

	// Sorted iteration to ensure deterministic output.
	for imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Strings(data.Imports)

	var buf bytes.Buffer
	if err := embedTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

var embedTemplate = template.Must(template.New("embed").Parse(`// Code generated by tomlgen. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}import (
{{range .Imports}}	"{{.}}"
{{end}})

{{end}}{{range .Decls}}// {{.Comment}}
{{if .Const}}const {{.Name}} = {{.Expr}}{{else}}var {{.Name}} = {{.Expr}}{{end}}

{{end}}`))
