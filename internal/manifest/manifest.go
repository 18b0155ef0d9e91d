// Package manifest loads and validates the declarative enumeration
// manifests consumed by enumgen.
package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/bft-labs/domainkit/pkg/enumeration"
)

// ErrInvalidManifest is returned when a manifest fails decoding or
// validation. Wrapped forms locate the offending enum or member.
var ErrInvalidManifest = errors.New("manifest: invalid manifest")

// Manifest declares the enumerations to generate for one Go package.
type Manifest struct {
	Package string `toml:"package" yaml:"package"`
	Enums   []Enum `toml:"enum" yaml:"enum"`
}

// Enum declares one enumeration type and its closed member set.
// Plural names the generated set variable and defaults to Name + "s";
// Marker is the logical type string and defaults to "package.Name".
type Enum struct {
	Name    string      `toml:"name" yaml:"name"`
	Plural  string      `toml:"plural" yaml:"plural"`
	Marker  string      `toml:"logical_type" yaml:"logical_type"`
	Members []MemberDef `toml:"member" yaml:"member"`
}

// MemberDef declares one member of an enumeration.
type MemberDef struct {
	Name  string `toml:"name" yaml:"name"`
	Value int    `toml:"value" yaml:"value"`
}

// Parse reads and decodes the manifest at path without validating it. The
// format follows the file extension: .toml, .yaml, or .yml. Callers that
// adjust fields before validation (such as a package override) should use
// Parse and call Validate themselves.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q (want .toml, .yaml, or .yml)", ErrInvalidManifest, ext)
	}
	return &m, nil
}

// Load reads, decodes, and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	m, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the manifest and sets derived defaults. Member rules
// reuse the runtime's own validation, so the generator accepts exactly
// the declarations a Set would.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("%w: package is required", ErrInvalidManifest)
	}
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("%w: package %q is not a valid Go identifier", ErrInvalidManifest, m.Package)
	}
	if len(m.Enums) == 0 {
		return fmt.Errorf("%w: no enumerations declared", ErrInvalidManifest)
	}

	// Generated types, set variables, member variables, and lookup helpers
	// all share the package namespace, so their names must be unique
	// together.
	decls := make(map[string]string)
	claim := func(name, by string) error {
		if prev, ok := decls[name]; ok {
			return fmt.Errorf("%w: identifier %q declared by both %s and %s", ErrInvalidManifest, name, prev, by)
		}
		decls[name] = by
		return nil
	}

	for i := range m.Enums {
		e := &m.Enums[i]
		if err := e.validate(m.Package); err != nil {
			return err
		}
		if err := claim(e.Name, fmt.Sprintf("enum %q", e.Name)); err != nil {
			return err
		}
		if err := claim(e.Plural, fmt.Sprintf("the set of enum %q", e.Name)); err != nil {
			return err
		}
		for _, helper := range []string{e.Name + "FromValue", e.Name + "FromName", "All" + e.Plural} {
			if err := claim(helper, fmt.Sprintf("a lookup helper of enum %q", e.Name)); err != nil {
				return err
			}
		}
		for _, md := range e.Members {
			if err := claim(md.Name, fmt.Sprintf("a member of enum %q", e.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// validate checks one enum declaration and fills in Plural and Marker.
func (e *Enum) validate(pkg string) error {
	if e.Name == "" {
		return fmt.Errorf("%w: enum name is required", ErrInvalidManifest)
	}
	if !token.IsIdentifier(e.Name) || !token.IsExported(e.Name) {
		return fmt.Errorf("%w: enum name %q must be an exported Go identifier", ErrInvalidManifest, e.Name)
	}

	if e.Plural == "" {
		e.Plural = e.Name + "s"
	}
	if !token.IsIdentifier(e.Plural) || !token.IsExported(e.Plural) {
		return fmt.Errorf("%w: enum %q: plural %q must be an exported Go identifier", ErrInvalidManifest, e.Name, e.Plural)
	}

	if e.Marker == "" {
		e.Marker = pkg + "." + e.Name
	}

	if len(e.Members) == 0 {
		return fmt.Errorf("%w: enum %q has no members", ErrInvalidManifest, e.Name)
	}

	members := make([]enumeration.Member, 0, len(e.Members))
	for _, md := range e.Members {
		if !token.IsIdentifier(md.Name) || !token.IsExported(md.Name) {
			return fmt.Errorf("%w: enum %q: member name %q must be an exported Go identifier", ErrInvalidManifest, e.Name, md.Name)
		}
		member, err := enumeration.NewMember(md.Value, md.Name)
		if err != nil {
			return fmt.Errorf("%w: enum %q: %w", ErrInvalidManifest, e.Name, err)
		}
		members = append(members, member)
	}

	// A throwaway set applies the runtime's duplicate checks.
	if err := enumeration.NewSet(e.Name, members...).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return nil
}
