// Package parser turns source text into the normalized token streams consumed by the
// evaluator and the equation solver.
//
// The grammar, from the loosest to the tightest binding, is
//
//	expr    := product { ("+" | "-") product }
//	product := unary { ("*" | "/") unary | power }
//	unary   := ("-" | "+") unary | power
//	power   := atom [ "^" unary ]
//	atom    := number | identifier [ "(" args ")" ] | "(" expr ")" | "{" args "}"
//
// where juxtaposition (2x, 3(x+1), x y) is a multiplication. User variables and
// functions are substituted while parsing, so the token stream only holds built-in
// functions, numeric literals and the names left unresolved.
package parser

import (
	"fmt"
	"strings"

	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/token"
	"github.com/symcalc/symcalc/utils/bignum"
)

// Function is a user function: Body is an expression over Params.
type Function struct {
	Params []string
	Body   string
}

// Definitions are the user variables and functions, by name.
type Definitions struct {
	Variables map[string]string
	Functions map[string]Function
}

// Validate checks that every defined name and parameter is an identifier, that no name is
// both a variable and a function, and that the parameters of each function are distinct.
func (d Definitions) Validate() error {

	for name := range d.Variables {
		if !isIdentifier(name) {
			return fmt.Errorf("invalid variable name %q", name)
		}
		if _, ok := d.Functions[name]; ok {
			return fmt.Errorf("%q is defined both as a variable and as a function", name)
		}
	}

	for name, f := range d.Functions {

		if !isIdentifier(name) {
			return fmt.Errorf("invalid function name %q", name)
		}

		seen := map[string]bool{}
		for _, param := range f.Params {
			if !isIdentifier(param) {
				return fmt.Errorf("function %s: invalid parameter name %q", name, param)
			}
			if seen[param] {
				return fmt.Errorf("function %s: duplicate parameter %q", name, param)
			}
			seen[param] = true
		}
	}

	return nil
}

func isIdentifier(s string) bool {
	lexemes, err := lex(s)
	return err == nil && len(lexemes) == 2 && lexemes[0].kind == lexIdent
}

// Parser parses expressions against a set of user definitions.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	defs    Definitions
	unknown string
}

// New creates a new Parser.
func New(defs Definitions) *Parser {
	return &Parser{defs: defs}
}

// WithUnknown returns a copy of the parser that never resolves name, so that it can be
// solved for even if it shadows a definition or a constant.
func (p *Parser) WithUnknown(name string) *Parser {
	return &Parser{defs: p.defs, unknown: name}
}

// Parse returns the token stream of the expression src, numeric literals being read
// with prec bits of precision.
func (p *Parser) Parse(src string, prec uint) ([]token.Token, error) {

	lexemes, err := lex(src)
	if err != nil {
		return nil, err
	}

	n, err := p.parse(lexemes, prec, nil, nil)
	if err != nil {
		return nil, err
	}

	return n.emit(nil), nil
}

// ParseEquation is Parse for equations: lhs = rhs is read as (lhs) - (rhs).
// Without an equal sign, src is parsed as an expression.
func (p *Parser) ParseEquation(src string, prec uint) ([]token.Token, error) {

	lexemes, err := lex(src)
	if err != nil {
		return nil, err
	}

	split := -1
	for i, l := range lexemes {
		if l.kind == lexEqual {
			if split >= 0 {
				return nil, fmt.Errorf("%w: more than one %q at position %d", ErrSyntax, "=", l.pos)
			}
			split = i
		}
	}

	if split < 0 {
		n, err := p.parse(lexemes, prec, nil, nil)
		if err != nil {
			return nil, err
		}
		return n.emit(nil), nil
	}

	lhs, err := p.parse(append(lexemes[:split:split], lexeme{kind: lexEOF, pos: lexemes[split].pos}), prec, nil, nil)
	if err != nil {
		return nil, err
	}

	rhs, err := p.parse(lexemes[split+1:], prec, nil, nil)
	if err != nil {
		return nil, err
	}

	return binaryNode{op: token.Sub, left: lhs, right: rhs}.emit(nil), nil
}

func (p *Parser) parse(lexemes []lexeme, prec uint, params map[string]node, expanding []string) (node, error) {

	st := &state{
		parser:    p,
		lexemes:   lexemes,
		prec:      prec,
		params:    params,
		expanding: expanding,
	}

	n, err := st.expr()
	if err != nil {
		return nil, err
	}

	if st.peek().kind != lexEOF {
		return nil, st.unexpected()
	}

	return n, nil
}

// state is the cursor of a single parse.
type state struct {
	parser    *Parser
	lexemes   []lexeme
	pos       int
	prec      uint
	params    map[string]node
	expanding []string
}

func (st *state) peek() lexeme {
	return st.lexemes[st.pos]
}

func (st *state) next() lexeme {
	l := st.lexemes[st.pos]
	if l.kind != lexEOF {
		st.pos++
	}
	return l
}

func (st *state) unexpected() error {
	l := st.peek()
	return fmt.Errorf("%w: unexpected %s at position %d", ErrSyntax, l, l.pos)
}

func (st *state) expect(kind lexemeKind) error {
	if st.peek().kind != kind {
		return st.unexpected()
	}
	st.next()
	return nil
}

func (st *state) expr() (node, error) {

	left, err := st.product()
	if err != nil {
		return nil, err
	}

	for {
		var op token.Operator
		switch st.peek().kind {
		case lexPlus:
			op = token.Add
		case lexMinus:
			op = token.Sub
		default:
			return left, nil
		}
		st.next()

		right, err := st.product()
		if err != nil {
			return nil, err
		}

		left = binaryNode{op: op, left: left, right: right}
	}
}

func (st *state) product() (node, error) {

	left, err := st.unary()
	if err != nil {
		return nil, err
	}

	for {
		var op token.Operator
		var right node

		switch st.peek().kind {
		case lexStar, lexSlash:
			op = token.Mul
			if st.next().kind == lexSlash {
				op = token.Div
			}
			if right, err = st.unary(); err != nil {
				return nil, err
			}
		case lexNumber, lexIdent, lexLeftRound, lexLeftCurly:
			op = token.ImplicitMul
			if right, err = st.power(); err != nil {
				return nil, err
			}
		default:
			return left, nil
		}

		left = binaryNode{op: op, left: left, right: right}
	}
}

func (st *state) unary() (node, error) {

	switch st.peek().kind {
	case lexPlus:
		st.next()
		return st.unary()
	case lexMinus:
		st.next()
		operand, err := st.unary()
		if err != nil {
			return nil, err
		}
		return negate(operand, st.prec), nil
	}

	return st.power()
}

// negate folds the sign into literals and cancels double negations.
func negate(n node, prec uint) node {
	switch n := n.(type) {
	case numNode:
		return numNode{value: bignum.Neg(n.value).ClearSignedZeros()}
	case negNode:
		return n.operand
	}
	return negNode{operand: n, prec: prec}
}

func (st *state) power() (node, error) {

	base, err := st.atom()
	if err != nil {
		return nil, err
	}

	if st.peek().kind != lexCaret {
		return base, nil
	}
	st.next()

	exponent, err := st.unary()
	if err != nil {
		return nil, err
	}

	return binaryNode{op: token.Pow, left: base, right: exponent}, nil
}

func (st *state) atom() (node, error) {

	l := st.peek()

	switch l.kind {
	case lexNumber:
		st.next()
		return st.number(l)

	case lexIdent:
		st.next()
		return st.identifier(l)

	case lexLeftRound:
		st.next()
		n, err := st.expr()
		if err != nil {
			return nil, err
		}
		return n, st.expect(lexRightRound)

	case lexLeftCurly:
		st.next()
		elems, err := st.args(lexRightCurly)
		if err != nil {
			return nil, err
		}
		if len(elems) == 0 {
			return nil, fmt.Errorf("%w: empty vector at position %d", ErrSyntax, l.pos)
		}
		return vectorNode{elems: elems}, nil
	}

	return nil, st.unexpected()
}

func (st *state) number(l lexeme) (node, error) {
	f, _, err := bignum.NewFloat(0, st.prec).Parse(l.text, 10)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid number %q at position %d", ErrSyntax, l.text, l.pos)
	}
	return numNode{value: bignum.ToComplex(f, st.prec)}, nil
}

// identifier resolves a name: function parameter, unknown, user variable, user function,
// built-in function, built-in constant, and finally unresolved name.
func (st *state) identifier(l lexeme) (node, error) {

	name := l.text
	call := st.peek().kind == lexLeftRound

	if n, ok := st.params[name]; ok {
		return n, nil
	}

	if name == st.parser.unknown {
		return nameNode{name: name}, nil
	}

	if body, ok := st.parser.defs.Variables[name]; ok {
		return st.expand(name, body, nil)
	}

	if f, ok := st.parser.defs.Functions[name]; ok && call {

		st.next()
		args, err := st.args(lexRightRound)
		if err != nil {
			return nil, err
		}

		if len(args) != len(f.Params) {
			return nil, fmt.Errorf("%w: %s takes %d arguments but got %d at position %d", ErrArity, name, len(f.Params), len(args), l.pos)
		}

		params := make(map[string]node, len(args))
		for i, param := range f.Params {
			params[param] = args[i]
		}

		return st.expand(name, f.Body, params)
	}

	if eval.IsFunction(name) && call {
		st.next()
		args, err := st.args(lexRightRound)
		if err != nil {
			return nil, err
		}
		return callNode{name: name, args: args}, nil
	}

	if c, ok := eval.Constant(name, st.prec); ok {
		return numNode{value: c}, nil
	}

	return nameNode{name: name}, nil
}

// expand parses the body of the user definition name.
func (st *state) expand(name, body string, params map[string]node) (node, error) {

	for _, e := range st.expanding {
		if e == name {
			return nil, fmt.Errorf("%w: %s", ErrRecursiveDefinition, strings.Join(append(st.expanding, name), " -> "))
		}
	}

	lexemes, err := lex(body)
	if err != nil {
		return nil, fmt.Errorf("cannot expand %s: %w", name, err)
	}

	expanding := append(st.expanding[:len(st.expanding):len(st.expanding)], name)

	n, err := st.parser.parse(lexemes, st.prec, params, expanding)
	if err != nil {
		return nil, fmt.Errorf("cannot expand %s: %w", name, err)
	}

	return n, nil
}

// args parses a comma separated list of expressions up to and including closing.
func (st *state) args(closing lexemeKind) (args []node, err error) {

	if st.peek().kind == closing {
		st.next()
		return
	}

	for {
		var n node
		if n, err = st.expr(); err != nil {
			return nil, err
		}
		args = append(args, n)

		if st.peek().kind != lexComma {
			return args, st.expect(closing)
		}
		st.next()
	}
}
