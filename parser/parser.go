package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/report"
	"github.com/ayzg/candi/token"
)

// Parse is the parser's public surface (§6 `parse_program`): it consumes a
// full token stream (ending in `eof`, per §3.1) and yields the root
// pragmatic_block_ node, or an error describing the first failure.
//
// The sub-parsers named in §6 — parse_value_statement, parse_operand,
// parse_arguments, and each parse_directive_<kind> — are exported
// individually (ParseValueStatement, ParseOperand, ParseArguments,
// ParseDirectiveType, ParseDirectiveVar, ParseDirectiveFunc,
// ParseDirectiveClass, ParseDirectiveReturn, ParseDirectiveIf,
// ParseDirectiveWhile, ParseDirectiveFor, ParseDirectiveOn) for tooling and
// testing, so a caller can drive the parser at any production named there.
func Parse(toks []token.Token) (node *ast.Node, err error) {
	defer func() {
		if x := recover(); x != nil {
			if diag, ok := x.(*report.Diagnostic); ok {
				err = diag
				return
			}
			panic(x)
		}
	}()

	end := len(toks)
	if end > 0 && toks[end-1].Kind == token.EOF {
		end--
	}

	result := ParsePragmaticBlock(toks, 0, end)
	if !result.OK {
		return nil, result.Diagnostic
	}
	return result.Node, nil
}
