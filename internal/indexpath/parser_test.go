package indexpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	path, err := Parse(`"package"."version"`)
	require.NoError(t, err)

	require.Len(t, path, 2)
	assert.Equal(t, Key("package"), path[0])
	assert.Equal(t, Key("version"), path[1])
}

func TestParseWithArrayIndex(t *testing.T) {
	path, err := Parse(`"package"."keywords".2`)
	require.NoError(t, err)

	require.Len(t, path, 3)
	assert.Equal(t, Key("package"), path[0])
	assert.Equal(t, Key("keywords"), path[1])
	assert.Equal(t, Index(2), path[2])
}

func TestParseSingleItem(t *testing.T) {
	path, err := Parse(`"package"`)
	require.NoError(t, err)

	require.Len(t, path, 1)
	assert.Equal(t, Key("package"), path[0])
}

func TestParseIndexAfterIndex(t *testing.T) {
	path, err := Parse(`"matrix".0.1`)
	require.NoError(t, err)

	require.Len(t, path, 3)
	assert.Equal(t, Index(0), path[1])
	assert.Equal(t, Index(1), path[2])
}

func TestParseKeyAfterIndex(t *testing.T) {
	path, err := Parse(`"bin".0."name"`)
	require.NoError(t, err)

	require.Len(t, path, 3)
	assert.Equal(t, Key("name"), path[2])
}

func TestParseIgnoresWhitespace(t *testing.T) {
	path, err := Parse(`  "package" . "keywords" . 2 `)
	require.NoError(t, err)

	require.Len(t, path, 3)
	assert.Equal(t, Index(2), path[2])
}

func TestParseStringEscapes(t *testing.T) {
	path, err := Parse(`"quo\"ted"."tab\there"`)
	require.NoError(t, err)

	require.Len(t, path, 2)
	assert.Equal(t, Key(`quo"ted`), path[0])
	assert.Equal(t, Key("tab\there"), path[1])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"empty input", ``, "cannot parse index item"},
		{"leading dot", `."package"`, "cannot parse index item"},
		{"consecutive dots", `"a"..2`, "cannot parse index item"},
		{"trailing dot", `"package"."name".`, "cannot parse index item"},
		{"bare identifier", `"package".version`, "cannot parse index item"},
		{"negative integer", `"a".-1`, "cannot parse index item"},
		{"unterminated string", `"package`, "cannot parse index item"},
		{"trailing garbage", `"a" "b"`, "cannot parse index item"},
		{"hex-like integer", `"a".0x2`, "cannot parse index item"},
		{"integer overflow", `"a".18446744073709551616`, "cannot parse literal integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseUnsupportedLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"float", `"a".1.5`},
		{"float with exponent", `"a".1e5`},
		{"bare float", `2.5`},
		{"boolean true", `true`},
		{"boolean false", `"lib".false`},
		{"char", `'c'`},
		{"byte-string", `b"bytes"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedLiteral)
		})
	}
}

func TestPathString(t *testing.T) {
	path, err := Parse(`"package"."keywords".2`)
	require.NoError(t, err)

	assert.Equal(t, `"package"."keywords".2`, path.String())
}
