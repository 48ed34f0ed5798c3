// Command brandgen generates brand declarations for package brand.
//
// Usage:
//
//	brandgen [flags] <declarations.go|.yaml|.yml|.json>
//
// A typical go:generate line, placed in a file that is part of the normal
// build:
//
//	//go:generate go run github.com/authcorp/libs/go/brand/cmd/brandgen ids.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/authcorp/libs/go/brand/internal/config"
	"github.com/authcorp/libs/go/brand/internal/gen"
	"github.com/authcorp/libs/go/brand/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(errOut, "brandgen: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("brandgen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var (
		output       = fs.String("o", "", "output file (default: <input>_brand.go)")
		brandImport  = fs.String("brand", cfg.BrandImport, "import path of package brand")
		constructors = fs.Bool("constructors", true, "emit Unchecked<Name> and, for uuid.UUID, NewRandom<Name>")
		check        = fs.Bool("check", false, "fail if the output file is out of date instead of writing it")
		verbose      = fs.Bool("v", false, "log at debug level")
	)
	fs.Usage = func() {
		printUsage(errOut)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	logger := logging.NewLogger(errOut, cfg.LogFormat, level)

	input := fs.Arg(0)
	path := *output
	if path == "" {
		path = gen.OutputPath(input)
	}

	f, err := gen.Load(input)
	if err != nil {
		fmt.Fprintf(errOut, "brandgen: %v\n", err)
		return 1
	}
	logger.Debug("loaded declarations", "input", input, "package", f.Package, "brands", len(f.Brands))

	src, err := gen.Generate(f, gen.Options{BrandImport: *brandImport, Constructors: *constructors})
	if err != nil {
		fmt.Fprintf(errOut, "brandgen: %v\n", err)
		return 1
	}

	if *check {
		if err := gen.Check(path, src); err != nil {
			fmt.Fprintf(errOut, "brandgen: %v\n", err)
			return 1
		}
		logger.Info("generated file is up to date", "output", path)
		return 0
	}

	if err := os.WriteFile(path, src, 0o644); err != nil {
		fmt.Fprintf(errOut, "brandgen: write %s: %v\n", path, err)
		return 1
	}
	logger.Info("generated brands", "input", input, "output", path, "brands", len(f.Brands))
	_, _ = fmt.Fprintln(out, path)
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "brandgen: generate branded types from alias declarations")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  brandgen [flags] <declarations.go|.yaml|.yml|.json>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BRANDGEN_LOG_LEVEL    debug, info, warn or error (default info)")
	fmt.Fprintln(w, "  BRANDGEN_LOG_FORMAT   text or json (default text)")
	fmt.Fprintln(w, "  BRANDGEN_BRAND_IMPORT default for -brand")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
}
