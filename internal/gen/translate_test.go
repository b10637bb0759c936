package gen

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomlgen/internal/value"
)

func TestTranslateScalars(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		in   value.Value
		want string
	}{
		{"string", value.String("0.1.0"), `"0.1.0"`},
		{"string with quotes", value.String(`say "hi"`), `"say \"hi\""`},
		{"integer", value.Integer(42), "int64(42)"},
		{"negative integer", value.Integer(-7), "int64(-7)"},
		{"float", value.Float(2.5), "float64(2.5)"},
		{"boolean true", value.Boolean(true), "true"},
		{"boolean false", value.Boolean(false), "false"},
		{"datetime", value.Datetime(ts), `"2024-01-02T03:04:05Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := Translate(tt.in)
			assert.Equal(t, tt.want, lit.Expr)
			assert.True(t, lit.Const)
			assert.Empty(t, lit.Imports)
		})
	}
}

func TestTranslateNonFiniteFloats(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"positive infinity", math.Inf(1), "math.Inf(1)"},
		{"negative infinity", math.Inf(-1), "math.Inf(-1)"},
		{"nan", math.NaN(), "math.NaN()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := Translate(value.Float(tt.in))
			assert.Equal(t, tt.want, lit.Expr)
			assert.False(t, lit.Const)
			assert.Equal(t, []string{"math"}, lit.Imports)
		})
	}
}

func TestTranslateArray(t *testing.T) {
	lit := Translate(value.Array{
		value.String("macro"),
		value.Integer(1),
		value.Boolean(true),
	})

	assert.Equal(t, `[]any{"macro", int64(1), true}`, lit.Expr)
	assert.False(t, lit.Const)
}

func TestTranslateTable(t *testing.T) {
	lit := Translate(value.Table{
		{Key: "edition", Value: value.String("2021")},
		{Key: "version", Value: value.String("0.1.0")},
	})

	assert.Equal(t, `map[string]any{"edition": "2021", "version": "0.1.0"}`, lit.Expr)
	assert.False(t, lit.Const)
}

func TestTranslateNested(t *testing.T) {
	lit := Translate(value.Table{
		{Key: "keywords", Value: value.Array{value.String("a"), value.String("b")}},
		{Key: "lib", Value: value.Table{{Key: "proc-macro", Value: value.Boolean(true)}}},
	})

	assert.Equal(t,
		`map[string]any{"keywords": []any{"a", "b"}, "lib": map[string]any{"proc-macro": true}}`,
		lit.Expr)
}

func TestTranslateEmptyValues(t *testing.T) {
	assert.Equal(t, "[]any{}", Translate(value.Array{}).Expr)
	assert.Equal(t, "map[string]any{}", Translate(value.Empty()).Expr)
}

func TestTranslatePropagatesImports(t *testing.T) {
	lit := Translate(value.Array{value.Float(math.Inf(1)), value.Integer(1)})

	require.Equal(t, []string{"math"}, lit.Imports)
	assert.Equal(t, "[]any{math.Inf(1), int64(1)}", lit.Expr)
}
