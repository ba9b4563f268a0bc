// Package token defines the lexical token kinds and the Token value the
// lexical stage (§4.3) emits and the syntactic stage (§4.4) consumes.
package token

import (
	"strconv"
	"strings"

	"github.com/kestrelscript/esfront/span"
)

// Kind is a bitmask-capable token tag (§3): a single token has exactly one
// of the leaf bits set, but callers can test membership in a union (Number,
// Literal, Comment) with a single bitwise AND, instead of a switch over
// every leaf kind.
type Kind uint32

const (
	End Kind = 1 << iota
	Integer
	Float
	String
	Punctuator
	Identifier
	LineComment
	BlockComment
	Template
	TemplateHead
	TemplateMiddle
	TemplateTail
	RegExp
	LineTerminator
	Whitespace
	Unknown
)

// Unions, as named in §3.
const (
	Number  = Integer | Float
	Literal = Number | String
	Comment = LineComment | BlockComment
)

// Is reports whether k has any bit of group set — the single-predicate
// group test §3 calls for (e.g. Is(Literal) matches String or Number).
func (k Kind) Is(group Kind) bool {
	return k&group != 0
}

var names = map[Kind]string{
	End:            "End",
	Integer:        "Integer",
	Float:          "Float",
	String:         "String",
	Punctuator:     "Punctuator",
	Identifier:     "Identifier",
	LineComment:    "LineComment",
	BlockComment:   "BlockComment",
	Template:       "Template",
	TemplateHead:   "TemplateHead",
	TemplateMiddle: "TemplateMiddle",
	TemplateTail:   "TemplateTail",
	RegExp:         "RegExp",
	LineTerminator: "LineTerminator",
	Whitespace:     "Whitespace",
	Unknown:        "Unknown",
}

// String renders a single leaf kind by name, or a "|"-joined list for a
// kind with more than one bit set (only ever produced by a caller
// constructing a group value directly; emitted tokens always carry exactly
// one leaf kind).
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	var parts []string
	for bit, name := range names {
		if k&bit != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "Kind(" + strconv.FormatUint(uint64(k), 2) + ")"
	}
	return strings.Join(parts, "|")
}

// Token is the tagged variant over Kind, carrying the matched lexeme and
// the Span it occupies (§3).
type Token struct {
	Kind    Kind
	Payload string
	Span    span.Span
}

func (t Token) String() string {
	return t.Kind.String() + "(" + strconv.Quote(t.Payload) + ")"
}
