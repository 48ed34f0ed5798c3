package gen

import (
	"errors"
	"fmt"
	"go/token"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidDecl is wrapped by every error about a malformed declaration.
	ErrInvalidDecl = errors.New("invalid brand declaration")

	// ErrDuplicateBrand is wrapped when two declarations produce the same
	// identifier.
	ErrDuplicateBrand = errors.New("duplicate brand")

	// ErrStale is returned by Check when the output on disk differs from what
	// Generate produces.
	ErrStale = errors.New("generated file is out of date")
)

// Import is an import the raw types of a file may refer to.
type Import struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Path string `yaml:"path" json:"path"`
}

// PackageName returns the name raw type expressions use for the import.
func (i Import) PackageName() string {
	if i.Name != "" {
		return i.Name
	}
	return assumedPackageName(i.Path)
}

// Decl declares one brand: a name and the raw type it wraps.
type Decl struct {
	Name string         `yaml:"name" json:"name"`
	Raw  string         `yaml:"raw" json:"raw"`
	Doc  string         `yaml:"doc,omitempty" json:"doc,omitempty"`
	Pos  token.Position `yaml:"-" json:"-"`
}

// Exported reports whether the brand is visible outside its package.
func (d Decl) Exported() bool {
	return token.IsExported(d.Name)
}

// TagName is the name of the generated discriminant type.
func (d Decl) TagName() string {
	return d.prefixed("branded") + "Tag"
}

// UncheckedName is the name of the generated unchecked constructor.
func (d Decl) UncheckedName() string {
	return d.prefixed("unchecked")
}

// NewRandomName is the name of the generated random UUID constructor.
func (d Decl) NewRandomName() string {
	return d.prefixed("newRandom")
}

// prefixed joins prefix and the declaration name in camel case, keeping the
// declaration's visibility.
func (d Decl) prefixed(prefix string) string {
	if d.Exported() {
		prefix = upperFirst(prefix)
	}
	return prefix + upperFirst(d.Name)
}

// File is a parsed declaration input.
type File struct {
	// Source is the input path as given to Load.
	Source  string   `yaml:"-" json:"-"`
	Package string   `yaml:"package" json:"package"`
	Imports []Import `yaml:"imports,omitempty" json:"imports,omitempty"`
	Brands  []Decl   `yaml:"brands" json:"brands"`
}

// DeclError reports a problem with one declaration.
type DeclError struct {
	Pos  token.Position
	Name string
	Err  error
}

func (e *DeclError) Error() string {
	var b strings.Builder
	if pos := e.Pos.String(); pos != "-" {
		b.WriteString(pos)
		b.WriteString(": ")
	}
	if e.Name != "" {
		b.WriteString(e.Name)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DeclError) Unwrap() error {
	return e.Err
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDecl, fmt.Sprintf(format, args...))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// assumedPackageName guesses the package name of an import path the way
// goimports does: the last element without a major version suffix, a "go-"
// prefix or a "-go" suffix, cut at the first character that cannot appear in
// an identifier.
func assumedPackageName(importPath string) string {
	base := path.Base(importPath)
	if strings.HasPrefix(base, "v") && len(base) > 1 && strings.Trim(base[1:], "0123456789") == "" {
		if dir := path.Dir(importPath); dir != "." {
			base = path.Base(dir)
		}
	}
	base = strings.TrimPrefix(base, "go-")
	base = strings.TrimSuffix(base, "-go")
	if i := strings.IndexFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	}); i >= 0 {
		base = base[:i]
	}
	return base
}
