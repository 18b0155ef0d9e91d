// Package codegen renders Go source for the enumerations a manifest
// declares.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/bft-labs/domainkit/internal/manifest"
)

const fileSrc = `// Code generated by enumgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/bft-labs/domainkit/pkg/enumeration"
	"github.com/bft-labs/domainkit/pkg/value"
)
{{range .Enums}}{{$enum := .}}
// {{.Name}} is a member of the closed {{.Name}} enumeration.
type {{.Name}} struct {
	enumeration.Member
}

// LogicalType identifies {{.Name}} values across wrapping layers.
func ({{.Name}}) LogicalType() value.Type { return {{printf "%q" .Marker}} }

var (
{{- range .Members}}
	{{.Name}} = {{$enum.Name}}{enumeration.MustMember({{.Value}}, {{printf "%q" .Name}})}
{{- end}}
)

// {{.Plural}} is the closed set of {{.Name}} members.
var {{.Plural}} = enumeration.NewSet({{printf "%q" .Name}},
{{- range .Members}}
	{{.Name}},
{{- end}}
)

// {{.Name}}FromValue returns the {{.Name}} with the given numeric value.
func {{.Name}}FromValue(v int) ({{.Name}}, error) {
	return {{.Plural}}.FromValue(v)
}

// {{.Name}}FromName returns the {{.Name}} with the given name.
func {{.Name}}FromName(name string) ({{.Name}}, error) {
	return {{.Plural}}.FromName(name)
}

// All{{.Plural}} returns every {{.Name}} in declaration order.
func All{{.Plural}}() ([]{{.Name}}, error) {
	return {{.Plural}}.All()
}
{{end}}`

var fileTemplate = template.Must(template.New("enumgen").Parse(fileSrc))

// Generate renders declarations for every enumeration in the manifest
// and returns gofmt-formatted source.
func Generate(m *manifest.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format: %w", err)
	}
	return src, nil
}

// WriteFile writes generated source atomically: a temp file in the
// target directory is renamed over the destination, so a concurrent
// reader sees either the old content or the new, never a torn write.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
