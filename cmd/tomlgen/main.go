// Package main provides the CLI entrypoint for tomlgen.
//
// tomlgen is a go:generate codegen tool that:
//   - Reads Cargo.toml from the directory named by CARGO_MANIFEST_DIR
//   - Navigates it with a dotted index path ("package"."keywords".2)
//   - Writes the selected value into a generated Go source file
//
// Typical use:
//
//	//go:generate tomlgen gen --name Version --out version_gen.go "package"."version"
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"tomlgen/internal/config"
	"tomlgen/internal/gen"
	"tomlgen/internal/indexpath"
	"tomlgen/internal/manifest"
	"tomlgen/internal/navigate"
	"tomlgen/internal/value"
)

const toolVersion = "0.2.0"

// Context represents the global context for commands.
type Context struct {
	Verbose bool
	Quiet   bool
}

// GenCmd generates a single declaration from one index path.
type GenCmd struct {
	Path   string `arg:"" help:"Dotted index path, e.g. '\"package\".\"version\"'"`
	Name   string `help:"Go identifier to declare" required:""`
	Out    string `help:"Output filename; empty prints to stdout" short:"o"`
	Pkg    string `help:"Package name for the generated file; resolved from the output directory when empty"`
	Strict bool   `help:"Fail when the path misses instead of emitting the empty value"`
}

// Run executes the gen command.
func (cmd *GenCmd) Run(ctx *Context) error {
	path, err := indexpath.Parse(cmd.Path)
	if err != nil {
		return err
	}

	doc, err := manifest.Load()
	if err != nil {
		return err
	}

	selected, err := selectValue(doc, path, cmd.Strict)
	if err != nil {
		return err
	}

	outDir, outFile := splitOut(cmd.Out)

	pkgName := cmd.Pkg
	if pkgName == "" {
		pkgName = gen.ResolvePackageName(outDir)
	}

	generator := gen.NewGenerator(gen.Config{PackageName: pkgName, OutputDir: outDir})

	file, err := generator.Generate(outFile, []gen.Embed{{
		Name:  cmd.Name,
		Path:  path,
		Value: selected,
	}})
	if err != nil {
		return err
	}

	if cmd.Out == "" {
		fmt.Print(string(file.Content))

		return nil
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, outDir); err != nil {
		return err
	}

	if ctx.Verbose {
		fmt.Printf("wrote %s\n", filepath.Join(outDir, file.Filename))
	}

	return nil
}

// BatchCmd generates every embed declared in a YAML batch manifest.
type BatchCmd struct {
	Config string `help:"Batch manifest path" default:"tomlgen.yaml" short:"c"`
	Dir    string `help:"Output directory" default:"." short:"d"`
}

// Run executes the batch command.
func (cmd *BatchCmd) Run(ctx *Context) error {
	cfg, err := config.LoadFile(cmd.Config)
	if err != nil {
		return err
	}

	// Group embeds by output file; every embed in a file must agree on
	// the package name.
	type group struct {
		pkg    string
		embeds []gen.Embed
	}

	groups := make(map[string]*group)

	var order []string

	for _, spec := range cfg.Embeds {
		// Each embed re-reads the manifest, matching the one-lookup-
		// per-invocation contract of the single gen command.
		doc, err := manifest.Load()
		if err != nil {
			return err
		}

		path, err := indexpath.Parse(spec.Path)
		if err != nil {
			return fmt.Errorf("embed %s: %w", spec.Name, err)
		}

		selected, err := selectValue(doc, path, spec.Strict)
		if err != nil {
			return fmt.Errorf("embed %s: %w", spec.Name, err)
		}

		outFile := spec.OutputFile(cfg)

		g, ok := groups[outFile]
		if !ok {
			g = &group{pkg: spec.PackageName(cfg)}
			groups[outFile] = g
			order = append(order, outFile)
		} else if pkg := spec.PackageName(cfg); pkg != g.pkg {
			return fmt.Errorf("embed %s: package %q conflicts with %q in %s", spec.Name, pkg, g.pkg, outFile)
		}

		g.embeds = append(g.embeds, gen.Embed{
			Name:  spec.Name,
			Path:  path,
			Value: selected,
		})
	}

	var files []gen.GeneratedFile

	for _, outFile := range order {
		g := groups[outFile]

		pkgName := g.pkg
		if pkgName == "" {
			pkgName = gen.ResolvePackageName(cmd.Dir)
		}

		generator := gen.NewGenerator(gen.Config{PackageName: pkgName, OutputDir: cmd.Dir})

		file, err := generator.Generate(outFile, g.embeds)
		if err != nil {
			return err
		}

		files = append(files, *file)
	}

	if err := gen.WriteFiles(files, cmd.Dir); err != nil {
		return err
	}

	if ctx.Verbose {
		for _, f := range files {
			fmt.Printf("wrote %s\n", filepath.Join(cmd.Dir, f.Filename))
		}
	}

	return nil
}

// InspectCmd dumps the value tree a path resolves to, for debugging a
// manifest or a path expression.
type InspectCmd struct {
	Path   string `arg:"" optional:"" help:"Dotted index path; omit to dump the whole document"`
	Strict bool   `help:"Fail when the path misses"`
}

// Run executes the inspect command.
func (cmd *InspectCmd) Run(ctx *Context) error {
	doc, err := manifest.Load()
	if err != nil {
		return err
	}

	selected := doc

	if cmd.Path != "" {
		path, err := indexpath.Parse(cmd.Path)
		if err != nil {
			return err
		}

		selected, err = selectValue(doc, path, cmd.Strict)
		if err != nil {
			return err
		}
	}

	spew.Dump(selected)

	return nil
}

// VersionCmd prints the tool version.
type VersionCmd struct{}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Printf("tomlgen v%s\n", toolVersion)

	return nil
}

func selectValue(doc value.Value, path indexpath.Path, strict bool) (value.Value, error) {
	if strict {
		return navigate.LookupStrict(doc, path)
	}

	return navigate.Lookup(doc, path), nil
}

// splitOut separates an output argument into directory and filename.
func splitOut(out string) (dir, file string) {
	if out == "" {
		return ".", "generated.go"
	}

	dir = filepath.Dir(out)
	file = filepath.Base(out)

	return dir, file
}

// CLI represents the command-line interface.
var CLI struct {
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Gen     GenCmd     `cmd:"" help:"Generate one declaration from an index path"`
	Batch   BatchCmd   `cmd:"" help:"Generate every embed declared in a batch manifest"`
	Inspect InspectCmd `cmd:"" help:"Dump the value a path resolves to"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

func main() {
	// A .env next to the invocation can provide CARGO_MANIFEST_DIR.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
