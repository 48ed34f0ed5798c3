package gen

import (
	"flag"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/authcorp/libs/go/brand/brandtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var update = flag.Bool("update", false, "rewrite golden files")

func generateFile(t *testing.T, name string, opts Options) []byte {
	t.Helper()
	f, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	src, err := Generate(f, opts)
	require.NoError(t, err)
	return src
}

func TestGenerate_Golden(t *testing.T) {
	got := generateFile(t, "ids.go", Options{Constructors: true})

	golden := filepath.Join("testdata", "ids_brand.golden")
	if *update {
		require.NoError(t, os.WriteFile(golden, got, 0o644))
	}
	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestGenerate_ManifestsMatchGolden(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "ids_brand.golden"))
	require.NoError(t, err)

	for _, name := range []string{"ids.yaml", "ids.json"} {
		t.Run(name, func(t *testing.T) {
			got := generateFile(t, name, Options{Constructors: true})
			expected := strings.Replace(string(want), "from ids.go.", "from "+name+".", 1)
			assert.Equal(t, expected, string(got))
		})
	}
}

func TestGenerate_WithoutConstructors(t *testing.T) {
	src := string(generateFile(t, "ids.go", Options{}))

	assert.NotContains(t, src, "func UncheckedUserID")
	assert.NotContains(t, src, "NewRandomSessionToken")
	assert.NotContains(t, src, "branduuid")
	assert.Contains(t, src, "type UserID = brand.Brand[BrandedUserIDTag, int32]")
}

func TestGenerate_CustomBrandImport(t *testing.T) {
	src := string(generateFile(t, "ids.go", Options{BrandImport: "example.com/kit/brandkit", Constructors: true}))

	assert.Contains(t, src, "\tbrand \"example.com/kit/brandkit\"\n")
	assert.Contains(t, src, "\t\"example.com/kit/brandkit/branduuid\"\n")
}

func TestGenerate_DropsUnusedImports(t *testing.T) {
	f := &File{
		Source:  "ids.yaml",
		Package: "ids",
		Imports: []Import{{Path: "time"}, {Path: "github.com/google/uuid"}},
		Brands:  []Decl{{Name: "ID", Raw: "int64"}},
	}

	src, err := Generate(f, Options{Constructors: true})
	require.NoError(t, err)
	assert.NotContains(t, string(src), `"time"`)
	assert.NotContains(t, string(src), `"github.com/google/uuid"`)
}

func TestGenerate_RenamedImport(t *testing.T) {
	f := &File{
		Source:  "ids.yaml",
		Package: "ids",
		Imports: []Import{{Name: "guuid", Path: "github.com/google/uuid"}},
		Brands:  []Decl{{Name: "ID", Raw: "guuid.UUID"}},
	}

	src, err := Generate(f, Options{Constructors: true})
	require.NoError(t, err)
	assert.Contains(t, string(src), `guuid "github.com/google/uuid"`)
	assert.Contains(t, string(src), "func NewRandomID() ID")
}

func TestGenerate_InvalidFile(t *testing.T) {
	_, err := Generate(&File{Package: "ids"}, Options{})
	assert.ErrorIs(t, err, ErrInvalidDecl)
}

func TestProperty_GeneratedSourceDeclaresBrand(t *testing.T) {
	raws := []string{"int32", "string", "[]byte", "map[string]int", "*float64", "uuid.UUID"}

	rapid.Check(t, func(t *rapid.T) {
		name := brandtest.IdentifierGen().Filter(func(s string) bool {
			return s != brandPkgName && s != brandUUIDPkgName && s != "uuid" && s != "init"
		}).Draw(t, "name")
		raw := rapid.SampledFrom(raws).Draw(t, "raw")

		f := &File{
			Source:  "p.yaml",
			Package: "p",
			Imports: []Import{{Path: "github.com/google/uuid"}},
			Brands:  []Decl{{Name: name, Raw: raw}},
		}
		src, err := Generate(f, Options{Constructors: true})
		if err != nil {
			t.Fatalf("generate %s = %s: %v", name, raw, err)
		}

		parsed, err := parser.ParseFile(token.NewFileSet(), "p_brand.go", src, 0)
		if err != nil {
			t.Fatalf("output does not parse: %v\n%s", err, src)
		}
		decl := Decl{Name: name}
		for _, ident := range []string{name, decl.TagName(), decl.UncheckedName()} {
			if parsed.Scope.Lookup(ident) == nil {
				t.Fatalf("output does not declare %s:\n%s", ident, src)
			}
		}
		if obj := parsed.Scope.Lookup(decl.TagName()); obj.Kind != ast.Typ {
			t.Fatalf("%s is a %s, want a type", decl.TagName(), obj.Kind)
		}
	})
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "ids_brand.go", OutputPath("ids.go"))
	assert.Equal(t, filepath.Join("internal", "ids", "ids_brand.go"), OutputPath(filepath.Join("internal", "ids", "ids.yaml")))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ids_brand.go")
	want := []byte("package ids\n")

	err := Check(path, want)
	assert.ErrorIs(t, err, ErrStale)
	assert.Contains(t, err.Error(), "does not exist")

	require.NoError(t, os.WriteFile(path, []byte("package old\n"), 0o644))
	assert.ErrorIs(t, Check(path, want), ErrStale)

	require.NoError(t, os.WriteFile(path, want, 0o644))
	assert.NoError(t, Check(path, want))
}
