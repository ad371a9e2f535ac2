// Package lexer tokenizes Candi source text.
package lexer

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/ayzg/candi/report"
	"github.com/ayzg/candi/token"
)

// keywordMode tracks which spelling of keyword a file has committed to.
type keywordMode int

const (
	modeUnset keywordMode = iota
	modeBare
	modeDirective
)

// Lexer tokenizes a single Candi source file.  It reads from a *bufio.Reader
// so it composes directly with os.Open, strings.NewReader, or a
// preprocessor's expanded buffer.
type Lexer struct {
	src     *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	mode keywordMode
}

// New creates a new lexer reading from r.
func New(r io.Reader) *Lexer {
	return &Lexer{
		src:     bufio.NewReader(r),
		tokBuff: &strings.Builder{},
	}
}

// Tokenize drains the lexer, producing the full token stream for r, ending
// with an EOF token (§4.1).
func Tokenize(r io.Reader) ([]token.Token, error) {
	l := New(r)

	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// NextToken retrieves the next token from the input.  At end of input this
// is an EOF token.
func (l *Lexer) NextToken() (token.Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return token.Token{}, err
		} else if c == -1 {
			return l.makeToken(token.EOF), nil
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
			continue
		case '\'':
			return l.lexStringLit()
		case '#':
			return l.lexDirectiveKeyword()
		case '&':
			return l.lexIntrinsic()
		}

		if isDecimalDigit(c) {
			return l.lexNumericLit()
		} else if isIdentStart(c) {
			return l.lexIdentOrKeyword()
		}

		return l.lexPunctOrOper()
	}
}

// -----------------------------------------------------------------------------

// punctPatterns maps punctuation/operator symbol strings to token kinds.
// Multi-character patterns are tried longest-match-first in lexPunctOrOper.
var punctPatterns = map[string]int{
	"(": token.OPEN_SCOPE, ")": token.CLOSE_SCOPE,
	"{": token.OPEN_LIST, "}": token.CLOSE_LIST,
	"[": token.OPEN_FRAME, "]": token.CLOSE_FRAME,
	",": token.COMMA, ";": token.EOS,
	".": token.PERIOD, // `...` is special-cased in lexPunctOrOper.

	"=": token.SIMPLE_ASSIGNMENT,
	"+": token.ADDITION, "-": token.SUBTRACTION,
	"*": token.MULTIPLICATION, "/": token.DIVISION, "%": token.MODULO,
	"&&": token.LOGICAL_AND, "||": token.LOGICAL_OR,
	"!":  token.NEGATION,
	"==": token.EQUALITY, "!=": token.INEQUALITY,
	"<": token.LESS, "<=": token.LESS_EQ,
	">": token.GREATER, ">=": token.GREATER_EQ,
}

// lexPunctOrOper lexes a punctuation or operator symbol, preferring the
// longest pattern that matches (so `...` wins over `.`, `==` over `=`).
func (l *Lexer) lexPunctOrOper() (token.Token, error) {
	l.mark()
	l.eat()

	// `...` cannot be discovered by single-character extension since `..`
	// is not itself a valid pattern; special-case it ahead of the loop.
	if l.tokBuff.String() == "." {
		c1, err := l.peek()
		if err != nil {
			return token.Token{}, err
		}
		if c1 == '.' {
			l.eat()
			c2, err := l.peek()
			if err != nil {
				return token.Token{}, err
			}
			if c2 == '.' {
				l.eat()
				return l.makeToken(token.ELLIPSIS), nil
			}
			return token.Token{}, report.Raise("lexer", l.getSpan(), "unknown character sequence %q", l.tokBuff.String())
		}
	}

	kind, ok := punctPatterns[l.tokBuff.String()]
	if !ok {
		// `||` has no single-character prefix pattern of its own, so it is
		// only reachable by extending the lone `|` here.
		c, err := l.peek()
		if err != nil {
			return token.Token{}, err
		}
		nk, ok := punctPatterns[l.tokBuff.String()+string(c)]
		if !ok {
			return token.Token{}, report.Raise("lexer", l.getSpan(), "unknown character %q", l.tokBuff.String())
		}
		l.eat()
		kind = nk
	}

	for {
		c, err := l.peek()
		if err != nil {
			return token.Token{}, err
		}
		if c == -1 {
			break
		}

		if nk, ok := punctPatterns[l.tokBuff.String()+string(c)]; ok {
			l.eat()
			kind = nk
		} else {
			break
		}
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexIdentOrKeyword lexes an identifier or a bare-spelled keyword.
func (l *Lexer) lexIdentOrKeyword() (token.Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return token.Token{}, err
		}
		if !isIdentStart(c) && !isDecimalDigit(c) {
			break
		}
		l.eat()
	}

	word := l.tokBuff.String()
	if kind, ok := token.LookupBareKeyword(word); ok {
		if err := l.commitMode(modeBare); err != nil {
			return token.Token{}, err
		}
		return l.makeToken(kind), nil
	}

	return l.makeToken(token.ALNUMUS), nil
}

// lexDirectiveKeyword lexes the `#`-prefixed spelling of a keyword (§4.1). A
// word after `#` that is not a recognised keyword is a lex-time error
// reported at the position of `#`.
func (l *Lexer) lexDirectiveKeyword() (token.Token, error) {
	l.mark()
	l.eat() // consume '#'

	for {
		c, err := l.peek()
		if err != nil {
			return token.Token{}, err
		}
		if !isIdentStart(c) && !isDecimalDigit(c) {
			break
		}
		l.eat()
	}

	word := strings.TrimPrefix(l.tokBuff.String(), "#")
	kind, ok := token.LookupDirectiveKeyword(word)
	if !ok {
		return token.Token{}, report.Raise("lexer", l.getSpan(), "unrecognised directive keyword %q", "#"+word)
	}

	if err := l.commitMode(modeDirective); err != nil {
		return token.Token{}, err
	}

	return l.makeToken(kind), nil
}

// lexIntrinsic lexes an `&`-prefixed intrinsic-type token.  These are atomic
// at lex time; constraint arguments like `&int[-42...42]` are parsed at the
// AST level (§4.1).
func (l *Lexer) lexIntrinsic() (token.Token, error) {
	l.mark()
	l.eat() // consume '&'

	// `&&` is the logical-and operator, not an intrinsic.
	if c, err := l.peek(); err != nil {
		return token.Token{}, err
	} else if c == '&' {
		l.eat()
		return l.makeToken(token.LOGICAL_AND), nil
	}

	for {
		c, err := l.peek()
		if err != nil {
			return token.Token{}, err
		}
		if !isIdentStart(c) && !isDecimalDigit(c) {
			break
		}
		l.eat()
	}

	word := strings.TrimPrefix(l.tokBuff.String(), "&")
	kind, ok := token.LookupIntrinsicWord(word)
	if !ok {
		return token.Token{}, report.Raise("lexer", l.getSpan(), "unrecognised intrinsic type %q", "&"+word)
	}

	return l.makeToken(kind), nil
}

// commitMode validates the bare/directive keyword mixing rule (§4.1, §9):
// once a file commits to one keyword spelling, the other is a lex error.
func (l *Lexer) commitMode(m keywordMode) error {
	if l.mode == modeUnset {
		l.mode = m
		return nil
	}

	if l.mode != m {
		return report.Raise("lexer", l.getSpan(), "cannot mix bare and directive keyword spellings in one file")
	}

	return nil
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes a number, real, unsigned, octet, or bit literal (§4.1).
func (l *Lexer) lexNumericLit() (token.Token, error) {
	l.mark()
	l.eat()

	isReal := false

numLexLoop:
	for {
		c, err := l.peek()
		if err != nil {
			return token.Token{}, err
		}
		if c == -1 {
			break
		}

		switch c {
		case '.':
			if isReal {
				break numLexLoop
			}
			// Only a '.' followed by a digit continues the literal, so the
			// `...` in `&int[-42...42]` is left for lexPunctOrOper.
			if next, _ := l.src.Peek(2); len(next) < 2 || !isDecimalDigit(rune(next[1])) {
				break numLexLoop
			}
			l.eat()
			isReal = true
		case 'u':
			if isReal {
				break numLexLoop
			}
			l.eat()
			return l.makeToken(token.UNSIGNED_LITERAL), nil
		case 'c':
			if isReal {
				break numLexLoop
			}
			l.eat()
			return l.makeToken(token.OCTET_LITERAL), nil
		case 'b':
			if isReal {
				break numLexLoop
			}
			l.eat()
			return l.makeToken(token.BIT_LITERAL), nil
		default:
			if isDecimalDigit(c) {
				l.eat()
			} else {
				break numLexLoop
			}
		}
	}

	if isReal {
		return l.makeToken(token.REAL_LITERAL), nil
	}
	return l.makeToken(token.NUMBER_LITERAL), nil
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a `'`-delimited string literal with backslash escapes.
func (l *Lexer) lexStringLit() (token.Token, error) {
	l.mark()
	l.eat() // consume opening quote

	for {
		c, err := l.eat()
		if err != nil {
			return token.Token{}, err
		}

		switch c {
		case -1:
			return token.Token{}, report.Raise("lexer", l.getSpan(), "unclosed string literal")
		case '\'':
			return l.makeToken(token.STRING_LITERAL), nil
		case '\\':
			if _, err := l.eat(); err != nil {
				return token.Token{}, err
			}
		}
	}
}

// -----------------------------------------------------------------------------

func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

func (l *Lexer) makeToken(kind int) token.Token {
	lit := l.tokBuff.String()
	l.tokBuff.Reset()

	return token.Token{
		Kind:    kind,
		Literal: lit,
		Span:    l.getSpan(),
	}
}

func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine, StartCol: l.startCol,
		EndLine: l.line, EndCol: l.col,
	}
}

// eat advances the lexer by one rune, appending it to the token buffer.  EOF
// is reported as -1.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}
		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)
	return c, nil
}

// skip advances the lexer by one rune without buffering it.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}
		return 0, err
	}

	l.updatePos(c)
	return c, nil
}

// peek returns the next rune without advancing the lexer.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}
		return 0, err
	}

	if err := l.src.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
