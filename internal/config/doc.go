// Package config reads the YAML batch manifest for tomlgen. A batch
// file pins every embedded value by name and index path, so one
// `tomlgen batch` run regenerates all of them deterministically.
//
// Schema:
//
//	version: "1"
//	package: meta          # default package for generated files
//	output: metadata_gen.go # default output filename
//	embeds:
//	  - name: Version
//	    path: '"package"."version"'
//	  - name: Keywords
//	    path: '"package"."keywords"'
//	    output: keywords_gen.go  # per-embed override
//	    strict: true             # fail on a missed lookup
package config
