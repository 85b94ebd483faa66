package parser

import (
	"github.com/symcalc/symcalc/token"
	"github.com/symcalc/symcalc/utils/bignum"
)

// binding strength of the serialized form of each node
const (
	precSum = iota + 1
	precProduct
	precPower
	precAtom
)

type node interface {
	precedence() int
	emit(tokens []token.Token) []token.Token
}

type numNode struct {
	value *bignum.Complex
}

type nameNode struct {
	name string
}

type vectorNode struct {
	elems []node
}

type callNode struct {
	name string
	args []node
}

type binaryNode struct {
	op          token.Operator
	left, right node
}

// negNode is a unary minus on a non-literal operand, serialized as -1 * operand.
type negNode struct {
	operand node
	prec    uint
}

func (numNode) precedence() int    { return precAtom }
func (nameNode) precedence() int   { return precAtom }
func (vectorNode) precedence() int { return precAtom }
func (callNode) precedence() int   { return precAtom }
func (negNode) precedence() int    { return precProduct }

func (n binaryNode) precedence() int {
	switch n.op {
	case token.Add, token.Sub:
		return precSum
	case token.Pow:
		return precPower
	default:
		return precProduct
	}
}

func (n numNode) emit(tokens []token.Token) []token.Token {
	return append(tokens, token.Num{Value: n.value})
}

func (n nameNode) emit(tokens []token.Token) []token.Token {
	return append(tokens, token.Name(n.name))
}

func (n vectorNode) emit(tokens []token.Token) []token.Token {
	tokens = append(tokens, token.LeftCurly)
	tokens = emitList(tokens, n.elems)
	return append(tokens, token.RightCurly)
}

func (n callNode) emit(tokens []token.Token) []token.Token {
	tokens = append(tokens, token.Func(n.name), token.LeftRound)
	tokens = emitList(tokens, n.args)
	return append(tokens, token.RightRound)
}

func (n negNode) emit(tokens []token.Token) []token.Token {
	tokens = append(tokens, token.NewNum(-1, n.prec), token.Mul)
	return emitOperand(tokens, n.operand, n.operand.precedence() < precProduct)
}

// emit brackets the operands whose structure the flat token stream would lose:
// looser operands, right operands of - and / at equal strength, and compound
// operands of ^.
func (n binaryNode) emit(tokens []token.Token) []token.Token {

	p := n.precedence()

	lp, rp := n.left.precedence(), n.right.precedence()

	var leftBrackets, rightBrackets bool
	switch n.op {
	case token.Pow:
		leftBrackets = lp < precAtom || isNegativeLiteral(n.left)
		rightBrackets = rp < precAtom
	case token.Sub, token.Div:
		leftBrackets = lp < p
		rightBrackets = rp <= p
	default:
		leftBrackets = lp < p
		rightBrackets = rp < p
	}

	tokens = emitOperand(tokens, n.left, leftBrackets)
	tokens = append(tokens, n.op)
	return emitOperand(tokens, n.right, rightBrackets)
}

func emitOperand(tokens []token.Token, n node, brackets bool) []token.Token {
	if !brackets {
		return n.emit(tokens)
	}
	tokens = append(tokens, token.LeftRound)
	tokens = n.emit(tokens)
	return append(tokens, token.RightRound)
}

func emitList(tokens []token.Token, nodes []node) []token.Token {
	for i, n := range nodes {
		if i != 0 {
			tokens = append(tokens, token.Comma{})
		}
		tokens = n.emit(tokens)
	}
	return tokens
}

func isNegativeLiteral(n node) bool {
	num, ok := n.(numNode)
	return ok && (num.value.Real().Signbit() || num.value.Imag().Sign() != 0)
}
