package generator

import (
	"strings"

	"github.com/kestrelscript/esfront/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
}

func (s *state) wrap(node ast.Node) *state {
	return &state{out: s.out, node: node, parent: s}
}
