package indexpath

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnsupportedLiteral reports a literal kind (float, boolean, char,
// byte-string) that cannot act as a navigation step.
var ErrUnsupportedLiteral = errors.New("unsupported literal")

// Parse parses a dotted index expression into a Path.
//
// Each item must be a double-quoted string literal or a non-negative
// base-10 integer literal. Items are separated by single dots. An empty
// expression, a leading dot, consecutive dots, or a dot at the end of
// the input all fail: every dot must be immediately followed by another
// literal.
func Parse(src string) (Path, error) {
	s := &scanner{src: src}

	var path Path

	for {
		step, err := s.literal()
		if err != nil {
			return nil, err
		}

		path = append(path, step)

		s.skipSpace()

		if !s.eat('.') {
			break
		}
	}

	s.skipSpace()

	if s.pos != len(s.src) {
		return nil, fmt.Errorf("cannot parse index item: unexpected input at offset %d", s.pos)
	}

	return path, nil
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) eat(c byte) bool {
	if s.pos < len(s.src) && s.src[s.pos] == c {
		s.pos++

		return true
	}

	return false
}

// literal scans one index item.
func (s *scanner) literal() (Step, error) {
	s.skipSpace()

	if s.pos >= len(s.src) {
		return Step{}, fmt.Errorf("cannot parse index item: expected literal at offset %d, got end of input", s.pos)
	}

	c := s.src[s.pos]

	switch {
	case c == '"':
		return s.stringLiteral()

	case isDigit(c):
		return s.intLiteral()

	case c == '\'':
		return Step{}, fmt.Errorf("%w at offset %d: char literal", ErrUnsupportedLiteral, s.pos)

	case isLetter(c) || c == '_':
		return s.identLike()

	default:
		return Step{}, fmt.Errorf("cannot parse index item: unexpected character %q at offset %d", c, s.pos)
	}
}

// stringLiteral scans a double-quoted string with Go escape rules.
func (s *scanner) stringLiteral() (Step, error) {
	start := s.pos
	s.pos++ // opening quote

	for {
		if s.pos >= len(s.src) {
			return Step{}, fmt.Errorf("cannot parse index item: unterminated string literal at offset %d", start)
		}

		switch s.src[s.pos] {
		case '\\':
			s.pos += 2

		case '"':
			s.pos++

			key, err := strconv.Unquote(s.src[start:s.pos])
			if err != nil {
				return Step{}, fmt.Errorf("cannot parse index item: invalid string literal at offset %d: %w", start, err)
			}

			return Key(key), nil

		default:
			s.pos++
		}
	}
}

// intLiteral scans a run of decimal digits. A digit run continued by a
// fraction or an exponent is one float token and therefore unsupported;
// a dot followed by a non-digit stays a separator.
func (s *scanner) intLiteral() (Step, error) {
	start := s.pos

	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}

	if s.pos < len(s.src) {
		c := s.src[s.pos]

		floatTail := c == '.' && s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1])
		if floatTail || c == 'e' || c == 'E' {
			return Step{}, fmt.Errorf("%w at offset %d: float literal", ErrUnsupportedLiteral, start)
		}

		if isLetter(c) || c == '_' {
			return Step{}, fmt.Errorf("cannot parse index item: malformed integer literal at offset %d", start)
		}
	}

	digits := s.src[start:s.pos]

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Step{}, fmt.Errorf("cannot parse literal integer %q at offset %d: %w", digits, start, err)
	}

	return Index(n), nil
}

// identLike handles keyword literals: booleans and byte-string prefixes
// are recognized so they fail as unsupported rather than as noise.
func (s *scanner) identLike() (Step, error) {
	start := s.pos

	for s.pos < len(s.src) && (isLetter(s.src[s.pos]) || isDigit(s.src[s.pos]) || s.src[s.pos] == '_') {
		s.pos++
	}

	ident := s.src[start:s.pos]

	if ident == "true" || ident == "false" {
		return Step{}, fmt.Errorf("%w at offset %d: boolean literal", ErrUnsupportedLiteral, start)
	}

	if s.pos < len(s.src) && s.src[s.pos] == '"' {
		return Step{}, fmt.Errorf("%w at offset %d: byte-string literal", ErrUnsupportedLiteral, start)
	}

	return Step{}, fmt.Errorf("cannot parse index item: unexpected identifier %q at offset %d", ident, start)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
