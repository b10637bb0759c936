package gen

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// ResolvePackageName determines the package clause for a file generated
// into dir. Under go:generate the GOPACKAGE variable already names the
// surrounding package; otherwise the package in dir is loaded, and as a
// last resort the directory name is sanitized into an identifier.
func ResolvePackageName(dir string) string {
	if pkg := os.Getenv("GOPACKAGE"); pkg != "" {
		return pkg
	}

	if name := loadedPackageName(dir); name != "" {
		return name
	}

	return sanitizeIdent(filepath.Base(absOrSelf(dir)))
}

func loadedPackageName(dir string) string {
	cfg := &packages.Config{
		Mode: packages.NeedName,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil || len(pkgs) == 0 {
		return ""
	}

	if len(pkgs[0].Errors) > 0 {
		return ""
	}

	return pkgs[0].Name
}

func absOrSelf(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}

	return abs
}

// sanitizeIdent turns a directory name into a usable package identifier.
func sanitizeIdent(name string) string {
	var sb strings.Builder

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			sb.WriteRune(r)
		case r >= '0' && r <= '9':
			if sb.Len() > 0 {
				sb.WriteRune(r)
			}
		}
	}

	if sb.Len() == 0 {
		return "main"
	}

	return strings.ToLower(sb.String())
}
