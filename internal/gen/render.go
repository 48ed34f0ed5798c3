package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// DefaultBrandImport is the import path of package brand.
const DefaultBrandImport = "github.com/authcorp/libs/go/brand"

// Options control the generated code.
type Options struct {
	// BrandImport is the import path of package brand. Package branduuid is
	// expected under it.
	BrandImport string
	// Constructors adds Unchecked<Name> for every brand and NewRandom<Name>
	// for brands over uuid.UUID.
	Constructors bool
}

func (o Options) withDefaults() Options {
	if o.BrandImport == "" {
		o.BrandImport = DefaultBrandImport
	}
	return o
}

func (o Options) brandUUIDImport() string {
	return o.BrandImport + "/branduuid"
}

type model struct {
	Source       string
	Package      string
	Imports      []Import
	Brands       []brandModel
	Constructors bool
}

type brandModel struct {
	Decl
	DocLines []string
	UUID     bool
}

var fileTemplate = template.Must(template.New("brands").Parse(`// Code generated by brandgen from {{.Source}}. DO NOT EDIT.

//go:build !brandgen

package {{.Package}}

import (
{{- range .Imports}}
	{{if .Name}}{{.Name}} {{end}}{{printf "%q" .Path}}
{{- end}}
)
{{range .Brands}}
{{- $tag := .TagName}}
// {{$tag}} is the discriminant of {{.Name}}.
type {{$tag}} struct{}

// BrandName returns {{printf "%q" .Name}}.
func ({{$tag}}) BrandName() string { return {{printf "%q" .Name}} }

{{range .DocLines}}{{.}}
{{end -}}
type {{.Name}} = brand.Brand[{{$tag}}, {{.Raw}}]
{{- if $.Constructors}}

// {{.UncheckedName}} brands raw as {{.Name}} without validating it.
func {{.UncheckedName}}(raw {{.Raw}}) {{.Name}} {
	return brand.UncheckedFromRaw[{{$tag}}](raw)
}
{{- if .UUID}}

// {{.NewRandomName}} returns a {{.Name}} wrapping a fresh random UUID.
func {{.NewRandomName}}() {{.Name}} {
	return branduuid.NewRandom[{{$tag}}]()
}
{{- end}}
{{- end}}
{{end}}`))

// Generate validates f and renders the gofmt-formatted Go source declaring
// its brands.
func Generate(f *File, opts Options) ([]byte, error) {
	m, err := plan(f, opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Source, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Source, err)
	}
	return src, nil
}

// OutputPath returns the default output file for a declaration file:
// ids.go and ids.yaml both become ids_brand.go.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_brand.go"
}

// Check returns an error wrapping ErrStale unless the file at path holds
// exactly want.
func Check(path string, want []byte) error {
	got, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrStale, path)
	}
	if err != nil {
		return fmt.Errorf("failed to read generated file: %w", err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: %s", ErrStale, path)
	}
	return nil
}
