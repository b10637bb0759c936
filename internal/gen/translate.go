package gen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"tomlgen/internal/value"
)

// Literal is a rendered Go expression for a manifest value.
type Literal struct {
	// Expr is the Go source expression.
	Expr string
	// Const reports whether Expr is a Go constant expression and may be
	// declared with const rather than var.
	Const bool
	// Imports lists extra packages the expression references.
	Imports []string
}

// Translate converts a value into a Go literal expression. It is total:
// every variant of the value tree has a defined rendering, so callers
// never see an error from it.
func Translate(v value.Value) Literal {
	switch v := v.(type) {
	case value.String:
		return Literal{Expr: strconv.Quote(string(v)), Const: true}

	case value.Integer:
		return Literal{Expr: fmt.Sprintf("int64(%d)", int64(v)), Const: true}

	case value.Float:
		return translateFloat(float64(v))

	case value.Boolean:
		return Literal{Expr: strconv.FormatBool(bool(v)), Const: true}

	case value.Datetime:
		// Datetimes degrade to their canonical text; the generated
		// program never sees a temporal type.
		return Literal{Expr: strconv.Quote(time.Time(v).Format(time.RFC3339Nano)), Const: true}

	case value.Array:
		var sb strings.Builder

		sb.WriteString("[]any{")

		var imports []string

		for i, elem := range v {
			if i > 0 {
				sb.WriteString(", ")
			}

			lit := Translate(elem)
			sb.WriteString(lit.Expr)
			imports = mergeImports(imports, lit.Imports)
		}

		sb.WriteString("}")

		return Literal{Expr: sb.String(), Imports: imports}

	case value.Table:
		var sb strings.Builder

		sb.WriteString("map[string]any{")

		var imports []string

		for i, entry := range v {
			if i > 0 {
				sb.WriteString(", ")
			}

			lit := Translate(entry.Value)
			sb.WriteString(strconv.Quote(entry.Key))
			sb.WriteString(": ")
			sb.WriteString(lit.Expr)
			imports = mergeImports(imports, lit.Imports)
		}

		sb.WriteString("}")

		return Literal{Expr: sb.String(), Imports: imports}

	default:
		// Unreachable for values built by value.FromAny; keep the
		// function total anyway.
		return Literal{Expr: "nil"}
	}
}

// translateFloat handles the non-finite values TOML allows (inf, nan),
// which have no Go constant spelling.
func translateFloat(f float64) Literal {
	switch {
	case math.IsInf(f, 1):
		return Literal{Expr: "math.Inf(1)", Imports: []string{"math"}}

	case math.IsInf(f, -1):
		return Literal{Expr: "math.Inf(-1)", Imports: []string{"math"}}

	case math.IsNaN(f):
		return Literal{Expr: "math.NaN()", Imports: []string{"math"}}

	default:
		return Literal{
			Expr:  fmt.Sprintf("float64(%s)", strconv.FormatFloat(f, 'g', -1, 64)),
			Const: true,
		}
	}
}

func mergeImports(into, add []string) []string {
	for _, imp := range add {
		found := false

		for _, have := range into {
			if have == imp {
				found = true

				break
			}
		}

		if !found {
			into = append(into, imp)
		}
	}

	return into
}
