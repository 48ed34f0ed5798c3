package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
)

// buildTag is the build tag that keeps declaration files out of normal builds.
const buildTag = "brandgen"

// Load reads a declaration file, choosing the parser by extension: Go source
// for .go, a manifest for .yaml, .yml and .json.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declarations: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".go":
		return ParseGo(path, data)
	case ".yaml", ".yml", ".json":
		return ParseManifest(path, data)
	default:
		return nil, fmt.Errorf("unsupported declaration file extension %q", ext)
	}
}

// ParseGo reads brand declarations from Go source. The file may contain only
// imports and type aliases, and must carry a build constraint that is
// satisfied only with the brandgen tag.
func ParseGo(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if !excludedFromBuild(f) {
		return nil, &DeclError{
			Pos: fset.Position(f.Package),
			Err: invalidf("declaration file needs a //go:build %s constraint", buildTag),
		}
	}

	file := &File{Source: filename, Package: f.Name.Name}
	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			return nil, fmt.Errorf("parse %s: import %s: %w", filename, spec.Path.Value, err)
		}
		imp := Import{Path: p}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}
		file.Imports = append(file.Imports, imp)
	}

	var errs []error
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			errs = append(errs, &DeclError{
				Pos: fset.Position(decl.Pos()),
				Err: invalidf("only imports and type aliases may appear in a declaration file"),
			})
			continue
		}

		switch gd.Tok {
		case token.IMPORT:
			continue
		case token.TYPE:
		default:
			errs = append(errs, &DeclError{
				Pos: fset.Position(gd.Pos()),
				Err: invalidf("unexpected %s declaration; only type aliases are allowed", gd.Tok),
			})
			continue
		}

		for _, s := range gd.Specs {
			ts := s.(*ast.TypeSpec)
			pos := fset.Position(ts.Name.Pos())

			if ts.TypeParams != nil {
				errs = append(errs, &DeclError{Pos: pos, Name: ts.Name.Name, Err: invalidf("brands cannot have type parameters")})
				continue
			}
			if !ts.Assign.IsValid() {
				errs = append(errs, &DeclError{
					Pos:  pos,
					Name: ts.Name.Name,
					Err:  invalidf("defined type; declare it as an alias: type %s = ...", ts.Name.Name),
				})
				continue
			}

			raw, err := exprString(fset, ts.Type)
			if err != nil {
				errs = append(errs, &DeclError{Pos: pos, Name: ts.Name.Name, Err: err})
				continue
			}

			doc := ts.Doc
			if doc == nil && !gd.Lparen.IsValid() {
				doc = gd.Doc
			}
			file.Brands = append(file.Brands, Decl{
				Name: ts.Name.Name,
				Raw:  raw,
				Doc:  doc.Text(),
				Pos:  pos,
			})
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return file, nil
}

// excludedFromBuild reports whether f has a //go:build line that holds with
// the brandgen tag and fails without it.
func excludedFromBuild(f *ast.File) bool {
	for _, group := range f.Comments {
		if group.Pos() >= f.Package {
			break
		}
		for _, c := range group.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}
			expr, err := constraint.Parse(c.Text)
			if err != nil {
				return false
			}
			with := expr.Eval(func(tag string) bool { return tag == buildTag })
			without := expr.Eval(func(string) bool { return false })
			return with && !without
		}
	}
	return false
}

func exprString(fset *token.FileSet, expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, expr); err != nil {
		return "", fmt.Errorf("format raw type: %w", err)
	}
	return buf.String(), nil
}
