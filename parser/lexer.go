package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type lexemeKind int

const (
	lexEOF = lexemeKind(iota)
	lexNumber
	lexIdent
	lexPlus
	lexMinus
	lexStar
	lexSlash
	lexCaret
	lexLeftRound
	lexRightRound
	lexLeftCurly
	lexRightCurly
	lexComma
	lexEqual
)

var punctuation = map[rune]lexemeKind{
	'+': lexPlus,
	'-': lexMinus,
	'*': lexStar,
	'/': lexSlash,
	'^': lexCaret,
	'(': lexLeftRound,
	')': lexRightRound,
	'{': lexLeftCurly,
	'}': lexRightCurly,
	',': lexComma,
	'=': lexEqual,
}

// lexeme is a lexical unit of the source text, pos being its byte offset.
type lexeme struct {
	kind lexemeKind
	text string
	pos  int
}

func (l lexeme) String() string {
	if l.kind == lexEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", l.text)
}

// lex splits src into lexemes, always terminated by lexEOF.
func lex(src string) (lexemes []lexeme, err error) {

	for i := 0; i < len(src); {

		r, size := utf8.DecodeRuneInString(src[i:])

		switch {
		case r == utf8.RuneError && size == 1:
			return nil, fmt.Errorf("%w: invalid UTF-8 at position %d", ErrSyntax, i)

		case unicode.IsSpace(r):
			i += size

		case isDigit(r) || (r == '.' && i+1 < len(src) && isDigit(rune(src[i+1]))):
			j := scanNumber(src, i)
			lexemes = append(lexemes, lexeme{kind: lexNumber, text: src[i:j], pos: i})
			i = j

		case isIdentStart(r):
			j := i + size
			for j < len(src) {
				r, size := utf8.DecodeRuneInString(src[j:])
				if !isIdentPart(r) {
					break
				}
				j += size
			}
			lexemes = append(lexemes, lexeme{kind: lexIdent, text: src[i:j], pos: i})
			i = j

		default:
			kind, ok := punctuation[r]
			if !ok {
				return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrSyntax, r, i)
			}
			lexemes = append(lexemes, lexeme{kind: kind, text: src[i : i+size], pos: i})
			i += size
		}
	}

	return append(lexemes, lexeme{kind: lexEOF, pos: len(src)}), nil
}

// scanNumber returns the end of the decimal literal starting at i: digits, an optional
// fraction and an optional exponent. An 'e' not followed by digits is left to the
// identifier scanner, so that 2e reads as 2 times e.
func scanNumber(src string, i int) int {

	j := i
	for j < len(src) && isDigit(rune(src[j])) {
		j++
	}

	if j < len(src) && src[j] == '.' {
		j++
		for j < len(src) && isDigit(rune(src[j])) {
			j++
		}
	}

	if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
		k := j + 1
		if k < len(src) && (src[k] == '+' || src[k] == '-') {
			k++
		}
		if k < len(src) && isDigit(rune(src[k])) {
			for k < len(src) && isDigit(rune(src[k])) {
				k++
			}
			j = k
		}
	}

	return j
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
