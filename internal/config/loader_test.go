package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: meta
output: metadata_gen.go
embeds:
  - name: Name
    path: '"package"."name"'
  - name: Version
    path: '"package"."version"'
    strict: true
  - name: Keywords
    path: '"package"."keywords"'
    output: keywords_gen.go
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "meta", f.Package)
	require.Len(t, f.Embeds, 3)

	assert.Equal(t, "Name", f.Embeds[0].Name)
	assert.False(t, f.Embeds[0].Strict)
	assert.Equal(t, "metadata_gen.go", f.Embeds[0].OutputFile(f))

	assert.True(t, f.Embeds[1].Strict)

	assert.Equal(t, "keywords_gen.go", f.Embeds[2].OutputFile(f))
	assert.Equal(t, "meta", f.Embeds[2].PackageName(f))
}

func TestParseAppliesDefaults(t *testing.T) {
	f, err := Parse([]byte(`
embeds:
  - name: Version
    path: '"package"."version"'
`))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "manifest_gen.go", f.Output)
	assert.Empty(t, f.Embeds[0].PackageName(f))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			"unsupported version",
			"version: \"2\"\nembeds:\n  - name: V\n    path: '\"v\"'\n",
			"unsupported config version",
		},
		{
			"no embeds",
			"version: \"1\"\n",
			"no embeds",
		},
		{
			"invalid identifier",
			"embeds:\n  - name: 2fast\n    path: '\"v\"'\n",
			"invalid identifier",
		},
		{
			"empty path",
			"embeds:\n  - name: V\n",
			"empty path",
		},
		{
			"bad path",
			"embeds:\n  - name: V\n    path: '.\"v\"'\n",
			"cannot parse index item",
		},
		{
			"duplicate name in one file",
			"embeds:\n  - name: V\n    path: '\"a\"'\n  - name: V\n    path: '\"b\"'\n",
			"duplicate name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseAllowsSameNameInDifferentFiles(t *testing.T) {
	_, err := Parse([]byte(`
embeds:
  - name: V
    path: '"a"'
  - name: V
    path: '"b"'
    output: other_gen.go
`))
	assert.NoError(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFilename)

	content := `
version: "1"
embeds:
  - name: Version
    path: '"package"."version"'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Embeds, 1)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
