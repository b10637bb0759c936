package config

// File is the parsed batch manifest.
type File struct {
	Version string      `yaml:"version"`
	Package string      `yaml:"package,omitempty"`
	Output  string      `yaml:"output,omitempty"`
	Embeds  []EmbedSpec `yaml:"embeds"`
}

// EmbedSpec declares one value to embed.
type EmbedSpec struct {
	// Name is the Go identifier declared in the generated file.
	Name string `yaml:"name"`
	// Path is the dotted index expression selecting the value.
	Path string `yaml:"path"`
	// Output overrides the file-level output filename.
	Output string `yaml:"output,omitempty"`
	// Package overrides the file-level package name.
	Package string `yaml:"package,omitempty"`
	// Strict makes a missed lookup fail instead of degrading to the
	// empty value.
	Strict bool `yaml:"strict,omitempty"`
}

// OutputFile returns the effective output filename for the embed.
func (e EmbedSpec) OutputFile(f *File) string {
	if e.Output != "" {
		return e.Output
	}

	return f.Output
}

// PackageName returns the effective package name for the embed. Empty
// means the caller resolves it from the output directory.
func (e EmbedSpec) PackageName(f *File) string {
	if e.Package != "" {
		return e.Package
	}

	return f.Package
}
