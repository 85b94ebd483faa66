package eval

import (
	"fmt"
	"math/big"

	"github.com/symcalc/symcalc/token"
	"github.com/symcalc/symcalc/utils/bignum"
)

// Evaluate reduces a token stream to its value.
// Name tokens are resolved through bindings, then through the built-in constants.
func Evaluate(tokens []token.Token, opts Options, bindings Bindings) (res Result, err error) {

	if err = opts.Validate(); err != nil {
		return
	}

	if len(tokens) == 0 {
		return Result{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	// arithmetic without a value (0/0, ln 0, 0^-1) panics with big.ErrNaN
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(big.ErrNaN); ok {
				res, err = Result{}, ErrUndefined
				if msg := e.Error(); msg != "" {
					err = fmt.Errorf("%w: %s", ErrUndefined, msg)
				}
				return
			}
			panic(r)
		}
	}()

	e := &evaluator{tokens: tokens, opts: opts, bindings: bindings}

	if res, err = e.expr(); err != nil {
		return Result{}, err
	}

	if e.pos != len(tokens) {
		return Result{}, e.unexpected()
	}

	return mapValues(res, func(v *bignum.Complex) *bignum.Complex {
		return v.Clone().ClearSignedZeros()
	}), nil
}

// EvaluateScalar is Evaluate for expressions that must reduce to a single value.
func EvaluateScalar(tokens []token.Token, opts Options, bindings Bindings) (*bignum.Complex, error) {
	res, err := Evaluate(tokens, opts, bindings)
	if err != nil {
		return nil, err
	}
	return res.Scalar()
}

type evaluator struct {
	tokens   []token.Token
	pos      int
	opts     Options
	bindings Bindings
}

func (e *evaluator) peek() token.Token {
	if e.pos < len(e.tokens) {
		return e.tokens[e.pos]
	}
	return nil
}

func (e *evaluator) unexpected() error {
	if e.pos >= len(e.tokens) {
		return fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected %q at token %d", ErrSyntax, e.tokens[e.pos].String(), e.pos)
}

func (e *evaluator) expect(b token.Bracket) error {
	if t, ok := e.peek().(token.Bracket); !ok || t != b {
		return e.unexpected()
	}
	e.pos++
	return nil
}

// expr := term (("+" | "-") term)*
func (e *evaluator) expr() (res Result, err error) {

	if res, err = e.term(); err != nil {
		return
	}

	for {
		op, ok := e.peek().(token.Operator)
		if !ok || (op != token.Add && op != token.Sub) {
			return
		}
		e.pos++

		var rhs Result
		if rhs, err = e.term(); err != nil {
			return
		}

		f := bignum.Add
		if op == token.Sub {
			f = bignum.Sub
		}

		if res, err = broadcast(res, rhs, nanSafe2(f)); err != nil {
			return
		}
	}
}

// term := unary (("*" | implicit | "/") unary)*
func (e *evaluator) term() (res Result, err error) {

	if res, err = e.unary(); err != nil {
		return
	}

	for {
		op, ok := e.peek().(token.Operator)
		if !ok || (op != token.Mul && op != token.ImplicitMul && op != token.Div) {
			return
		}
		e.pos++

		var rhs Result
		if rhs, err = e.unary(); err != nil {
			return
		}

		f := bignum.Mul
		if op == token.Div {
			f = bignum.Quo
		}

		if res, err = broadcast(res, rhs, nanSafe2(f)); err != nil {
			return
		}
	}
}

// unary := ("-" | "+") unary | power
func (e *evaluator) unary() (Result, error) {
	if op, ok := e.peek().(token.Operator); ok && (op == token.Sub || op == token.Add) {
		e.pos++
		res, err := e.unary()
		if err != nil || op == token.Add {
			return res, err
		}
		return mapValues(res, nanSafe1(bignum.Neg)), nil
	}
	return e.power()
}

// power := primary ("^" unary)?
func (e *evaluator) power() (res Result, err error) {

	if res, err = e.primary(); err != nil {
		return
	}

	if op, ok := e.peek().(token.Operator); ok && op == token.Pow {
		e.pos++
		var exp Result
		if exp, err = e.unary(); err != nil {
			return
		}
		return broadcast(res, exp, nanSafe2(bignum.ComplexPow))
	}

	return
}

// primary := number | vector | name | function "(" args ")" | "(" expr ")" | "{" args "}"
func (e *evaluator) primary() (Result, error) {

	switch t := e.peek().(type) {
	case token.Num:
		e.pos++
		return NewScalar(t.Value), nil

	case token.Vector:
		e.pos++
		return NewVector(t.Values), nil

	case token.Name:
		e.pos++
		if v, ok := e.bindings[string(t)]; ok {
			return v, nil
		}
		if v, ok := Constant(string(t), e.opts.Prec); ok {
			return NewScalar(v), nil
		}
		return Result{}, fmt.Errorf("%w: %s", ErrUnboundName, string(t))

	case token.Func:
		e.pos++
		return e.call(string(t))

	case token.Bracket:
		switch t {
		case token.LeftRound:
			e.pos++
			res, err := e.expr()
			if err != nil {
				return Result{}, err
			}
			return res, e.expect(token.RightRound)
		case token.LeftCurly:
			e.pos++
			args, err := e.args(token.RightCurly)
			if err != nil {
				return Result{}, err
			}
			values := make([]*bignum.Complex, len(args))
			for i := range args {
				if values[i], err = args[i].Scalar(); err != nil {
					return Result{}, err
				}
			}
			return NewVector(values), nil
		}
	}

	return Result{}, e.unexpected()
}

// args parses a comma separated list of expressions up to and including the closing bracket.
func (e *evaluator) args(closing token.Bracket) (args []Result, err error) {

	if b, ok := e.peek().(token.Bracket); ok && b == closing {
		e.pos++
		return
	}

	for {
		var arg Result
		if arg, err = e.expr(); err != nil {
			return nil, err
		}
		args = append(args, arg)

		if _, ok := e.peek().(token.Comma); ok {
			e.pos++
			continue
		}

		return args, e.expect(closing)
	}
}

func (e *evaluator) call(name string) (Result, error) {

	if err := e.expect(token.LeftRound); err != nil {
		return Result{}, err
	}

	args, err := e.args(token.RightRound)
	if err != nil {
		return Result{}, err
	}

	switch len(args) {
	case 1:
		if f, ok := unaryFunctions[name]; ok {
			return mapValues(args[0], nanSafe1(f)), nil
		}
	case 2:
		if f, ok := binaryFunctions[name]; ok {
			return broadcast(args[0], args[1], nanSafe2(f))
		}
	}

	if IsFunction(name) {
		return Result{}, fmt.Errorf("%w: %s does not take %d arguments", ErrSyntax, name, len(args))
	}

	return Result{}, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
}
