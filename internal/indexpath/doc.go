// Package indexpath parses dotted index expressions such as
//
//	"package"."keywords".2
//
// into an ordered list of navigation steps. String literals select table
// keys, integer literals select array positions. Any other literal kind
// is rejected.
//
// The grammar is a sequence of literals separated by single dots: no
// leading dot, no consecutive dots, and a trailing dot must be followed
// by another literal. Whitespace between tokens is ignored.
package indexpath
