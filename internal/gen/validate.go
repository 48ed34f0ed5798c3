package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"
)

const uuidImport = "github.com/google/uuid"

// Names the generated code refers to unqualified.
const (
	brandPkgName     = "brand"
	brandUUIDPkgName = "branduuid"
)

// Validate reports every problem Generate would fail on, joined into one
// error.
func Validate(f *File, opts Options) error {
	_, err := plan(f, opts.withDefaults())
	return err
}

// problems accumulates validation errors.
type problems struct {
	errs []error
}

func (p *problems) add(pos token.Position, name string, err error) {
	p.errs = append(p.errs, &DeclError{Pos: pos, Name: name, Err: err})
}

func (p *problems) ok() bool {
	return len(p.errs) == 0
}

func (p *problems) err() error {
	return errors.Join(p.errs...)
}

// plan validates f and resolves what the output needs.
func plan(f *File, opts Options) (*model, error) {
	var p problems
	filePos := token.Position{Filename: f.Source}

	if !token.IsIdentifier(f.Package) || f.Package == "_" {
		p.add(filePos, "", invalidf("package name %q is not a valid identifier", f.Package))
	}
	if len(f.Brands) == 0 {
		p.add(filePos, "", invalidf("no brand declarations"))
	}

	// Package names visible to raw types, by name.
	pkgs := make(map[string]string)
	var dotImports []Import
	for _, imp := range f.Imports {
		switch {
		case imp.Path == "":
			p.add(filePos, "", invalidf("import with empty path"))
			continue
		case imp.Name == "_":
			continue
		case imp.Name == ".":
			dotImports = append(dotImports, imp)
			continue
		}

		name := imp.PackageName()
		if !token.IsIdentifier(name) {
			p.add(filePos, "", invalidf("cannot derive a package name for %q; give the import a name", imp.Path))
			continue
		}
		if reserved(name) && imp.Path != reservedPath(name, opts) {
			p.add(filePos, "", invalidf("import name %q is used by generated code", name))
			continue
		}
		if prev, ok := pkgs[name]; ok && prev != imp.Path {
			p.add(filePos, "", invalidf("import name %q refers to both %q and %q", name, prev, imp.Path))
			continue
		}
		pkgs[name] = imp.Path
	}

	m := &model{
		Source:       filepath.Base(f.Source),
		Package:      f.Package,
		Constructors: opts.Constructors,
	}

	// Every package-level identifier the output declares, with where it came
	// from. Import names are file-scoped but still conflict.
	declared := make(map[string]string)
	for name := range pkgs {
		declared[name] = "an import"
	}
	declared[brandPkgName] = "an import"
	declared[brandUUIDPkgName] = "an import"
	declare := func(d Decl, ident string) bool {
		if where, ok := declared[ident]; ok {
			p.add(d.Pos, d.Name, fmt.Errorf("%w: %s already declared by %s", ErrDuplicateBrand, ident, where))
			return false
		}
		where := d.Pos.String()
		if where == "-" {
			where = "brand " + d.Name
		}
		declared[ident] = where
		return true
	}

	used := make(map[string]bool)
	needUUID := false
	for _, d := range f.Brands {
		if !token.IsIdentifier(d.Name) || d.Name == "_" {
			p.add(d.Pos, d.Name, invalidf("brand name %q is not a valid identifier", d.Name))
			continue
		}
		if d.Name == "init" {
			p.add(d.Pos, d.Name, invalidf("init cannot name a type"))
			continue
		}
		if types.Universe.Lookup(d.Name) != nil {
			p.add(d.Pos, d.Name, invalidf("brand name shadows the predeclared identifier %s", d.Name))
			continue
		}

		raw, quals, err := parseRaw(d.Raw)
		if err != nil {
			p.add(d.Pos, d.Name, err)
			continue
		}
		resolved := true
		for _, q := range quals {
			if _, ok := pkgs[q]; !ok {
				p.add(d.Pos, d.Name, invalidf("raw type %s refers to package %s, which is not imported", raw, q))
				resolved = false
			}
		}
		if !resolved {
			continue
		}
		for _, q := range quals {
			used[q] = true
		}

		b := brandModel{Decl: d, UUID: isUUID(raw, pkgs)}
		b.Raw = raw
		b.DocLines = docLines(b.Decl)

		// Names derived from a duplicate would only repeat the same collision.
		if !declare(d, d.Name) {
			continue
		}
		declare(d, d.TagName())
		if opts.Constructors {
			declare(d, d.UncheckedName())
			if b.UUID {
				declare(d, d.NewRandomName())
				needUUID = true
			}
		}
		m.Brands = append(m.Brands, b)
	}

	if !p.ok() {
		return nil, p.err()
	}

	m.Imports = append(m.Imports, Import{Path: opts.BrandImport})
	if assumedPackageName(opts.BrandImport) != brandPkgName {
		m.Imports[0].Name = brandPkgName
	}
	if needUUID {
		m.Imports = append(m.Imports, Import{Name: brandUUIDPkgName, Path: opts.brandUUIDImport()})
		if assumedPackageName(opts.brandUUIDImport()) == brandUUIDPkgName {
			m.Imports[len(m.Imports)-1].Name = ""
		}
	}
	for name, importPath := range pkgs {
		if !used[name] || importPath == opts.BrandImport || (needUUID && importPath == opts.brandUUIDImport()) {
			continue
		}
		imp := Import{Path: importPath}
		if assumedPackageName(importPath) != name {
			imp.Name = name
		}
		m.Imports = append(m.Imports, imp)
	}
	m.Imports = append(m.Imports, dotImports...)
	sort.Slice(m.Imports, func(i, j int) bool { return m.Imports[i].Path < m.Imports[j].Path })

	return m, nil
}

func reserved(name string) bool {
	return name == brandPkgName || name == brandUUIDPkgName
}

func reservedPath(name string, opts Options) string {
	if name == brandPkgName {
		return opts.BrandImport
	}
	return opts.brandUUIDImport()
}

// parseRaw parses a raw type, returning it in gofmt form together with the
// package qualifiers it uses.
func parseRaw(raw string) (string, []string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil, invalidf("missing raw type")
	}

	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "", raw, 0)
	if err != nil {
		return "", nil, invalidf("raw type %q does not parse: %v", raw, err)
	}
	if !isTypeExpr(expr) {
		return "", nil, invalidf("raw type %q is not a type", raw)
	}

	var quals []string
	seen := make(map[string]bool)
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok && !seen[id.Name] {
			seen[id.Name] = true
			quals = append(quals, id.Name)
		}
		return false
	})

	formatted, err := exprString(fset, expr)
	if err != nil {
		return "", nil, err
	}
	return formatted, quals, nil
}

func isTypeExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.ParenExpr:
		return isTypeExpr(e.X)
	case *ast.StarExpr:
		return isTypeExpr(e.X)
	case *ast.ArrayType:
		return isTypeExpr(e.Elt)
	case *ast.MapType:
		return isTypeExpr(e.Key) && isTypeExpr(e.Value)
	case *ast.ChanType:
		return isTypeExpr(e.Value)
	case *ast.IndexExpr:
		return isTypeExpr(e.X) && isTypeExpr(e.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(e.X) {
			return false
		}
		for _, idx := range e.Indices {
			if !isTypeExpr(idx) {
				return false
			}
		}
		return true
	case *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	}
	return false
}

func isUUID(raw string, pkgs map[string]string) bool {
	qual, name, ok := strings.Cut(raw, ".")
	return ok && name == "UUID" && pkgs[qual] == uuidImport
}

func docLines(d Decl) []string {
	doc := strings.TrimSpace(d.Doc)
	if doc == "" {
		doc = fmt.Sprintf("%s is a brand over %s.", d.Name, d.Raw)
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			lines[i] = "//"
		} else {
			lines[i] = "// " + line
		}
	}
	return lines
}
