/*
 * Sint - Overflow-checked fixed-width signed integers
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/onflow/sint"
)

// policy selects which operation family the evaluator dispatches to.
type policy int

const (
	policyChecked policy = iota
	policyWrapped
	policySaturated
	policyUnchecked
)

var policyNames = map[string]policy{
	"checked":   policyChecked,
	"wrapped":   policyWrapped,
	"saturated": policySaturated,
	"unchecked": policyUnchecked,
}

func (p policy) String() string {
	for name, q := range policyNames {
		if p == q {
			return name
		}
	}
	return "unknown"
}

func (p policy) add(a, b sint.Num) sint.Num {
	switch p {
	case policyWrapped:
		return sint.AddWrapped(a, b)
	case policySaturated:
		return sint.AddSaturated(a, b)
	case policyUnchecked:
		return sint.AddUnchecked(a, b)
	default:
		return sint.Add(a, b)
	}
}

func (p policy) sub(a, b sint.Num) sint.Num {
	switch p {
	case policyWrapped:
		return sint.SubWrapped(a, b)
	case policySaturated:
		return sint.SubSaturated(a, b)
	case policyUnchecked:
		return sint.SubUnchecked(a, b)
	default:
		return sint.Sub(a, b)
	}
}

func (p policy) mul(a, b sint.Num) sint.Num {
	switch p {
	case policyWrapped:
		return sint.MulWrapped(a, b)
	case policySaturated:
		return sint.MulSaturated(a, b)
	case policyUnchecked:
		return sint.MulUnchecked(a, b)
	default:
		return sint.Mul(a, b)
	}
}

func (p policy) div(a, b sint.Num) sint.Num {
	switch p {
	case policyWrapped:
		return sint.DivWrapped(a, b)
	case policySaturated:
		return sint.DivSaturated(a, b)
	case policyUnchecked:
		return sint.DivUnchecked(a, b)
	default:
		return sint.Div(a, b)
	}
}

func (p policy) rem(a, b sint.Num) sint.Num {
	switch p {
	case policyWrapped:
		return sint.RemWrapped(a, b)
	case policySaturated:
		return sint.RemSaturated(a, b)
	case policyUnchecked:
		return sint.RemUnchecked(a, b)
	default:
		return sint.Rem(a, b)
	}
}

// shifts have no wrapped or saturated form; those policies
// use the checked shift
func (p policy) shl(a, b sint.Num) sint.Num {
	if p == policyUnchecked {
		return sint.ShlUnchecked(a, b)
	}
	return sint.Shl(a, b)
}

func (p policy) shr(a, b sint.Num) sint.Num {
	if p == policyUnchecked {
		return sint.ShrUnchecked(a, b)
	}
	return sint.Shr(a, b)
}

// neg is computed as 0 - x in the selected family,
// so every policy has a negation
func (p policy) neg(a sint.Num) sint.Num {
	return p.sub(sint.NewInt8(0), a)
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
}

type scanError struct {
	offset int
	char   rune
}

func (e scanError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.char, e.offset)
}

func scan(input string) ([]token, error) {
	var tokens []token

	runes := []rune(input)
	i := 0

	for i < len(runes) {
		c := runes[i]

		switch {
		case unicode.IsSpace(c):
			i++

		case unicode.IsDigit(c):
			start := i
			for i < len(runes) &&
				(unicode.IsDigit(runes[i]) ||
					unicode.IsLetter(runes[i]) ||
					runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{
				kind: tokenNumber,
				text: string(runes[start:i]),
			})

		case c == '<' || c == '>':
			if i+1 >= len(runes) || runes[i+1] != c {
				return nil, scanError{offset: i, char: c}
			}
			tokens = append(tokens, token{
				kind: tokenOperator,
				text: string([]rune{c, c}),
			})
			i += 2

		case strings.ContainsRune("+-*/%&|^~()", c):
			tokens = append(tokens, token{
				kind: tokenOperator,
				text: string(c),
			})
			i++

		default:
			return nil, scanError{offset: i, char: c}
		}
	}

	tokens = append(tokens, token{kind: tokenEOF})
	return tokens, nil
}

// parser is a recursive-descent expression parser. Precedence,
// loosest binding first: | ^ & (<< >>) (+ -) (* / %) unary.
type parser struct {
	tokens []token
	pos    int
	policy policy
}

type parseError struct {
	message string
}

func (e parseError) Error() string {
	return e.message
}

// evaluate parses and evaluates an expression over the value types.
// Literals may carry a width suffix (i8, i16, i32, i64); mixed widths
// promote to the larger operand width.
func evaluate(input string, p policy) (result sint.Num, err error) {
	tokens, err := scan(input)
	if err != nil {
		return nil, err
	}

	parser := &parser{
		tokens: tokens,
		policy: p,
	}

	result, err = parser.parseBitOr()
	if err != nil {
		return nil, err
	}

	if !parser.atEnd() {
		return nil, parseError{
			message: fmt.Sprintf("unexpected token %q", parser.peek().text),
		}
	}

	return result, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) atEnd() bool {
	return p.peek().kind == tokenEOF
}

func (p *parser) acceptOperator(text string) bool {
	t := p.peek()
	if t.kind == tokenOperator && t.text == text {
		p.pos++
		return true
	}
	return false
}

func (p *parser) parseBitOr() (sint.Num, error) {
	lhs, err := p.parseBitXor()
	if err != nil {
		return nil, err
	}
	for p.acceptOperator("|") {
		rhs, err := p.parseBitXor()
		if err != nil {
			return nil, err
		}
		lhs = sint.BitOr(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) parseBitXor() (sint.Num, error) {
	lhs, err := p.parseBitAnd()
	if err != nil {
		return nil, err
	}
	for p.acceptOperator("^") {
		rhs, err := p.parseBitAnd()
		if err != nil {
			return nil, err
		}
		lhs = sint.BitXor(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) parseBitAnd() (sint.Num, error) {
	lhs, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for p.acceptOperator("&") {
		rhs, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		lhs = sint.BitAnd(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) parseShift() (sint.Num, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOperator("<<"):
			rhs, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			lhs = p.policy.shl(lhs, rhs)
		case p.acceptOperator(">>"):
			rhs, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			lhs = p.policy.shr(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *parser) parseAdditive() (sint.Num, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOperator("+"):
			rhs, err := p.parseMultiplicative()
			if err != nil {
				return nil, err
			}
			lhs = p.policy.add(lhs, rhs)
		case p.acceptOperator("-"):
			rhs, err := p.parseMultiplicative()
			if err != nil {
				return nil, err
			}
			lhs = p.policy.sub(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *parser) parseMultiplicative() (sint.Num, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOperator("*"):
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = p.policy.mul(lhs, rhs)
		case p.acceptOperator("/"):
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = p.policy.div(lhs, rhs)
		case p.acceptOperator("%"):
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = p.policy.rem(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *parser) parseUnary() (sint.Num, error) {
	switch {
	case p.acceptOperator("-"):
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.policy.neg(operand), nil

	case p.acceptOperator("~"):
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return sint.BitNot(operand), nil

	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (sint.Num, error) {
	if p.acceptOperator("(") {
		inner, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		if !p.acceptOperator(")") {
			return nil, parseError{message: "missing closing parenthesis"}
		}
		return inner, nil
	}

	t := p.next()
	if t.kind != tokenNumber {
		return nil, parseError{
			message: fmt.Sprintf("expected number, got %q", t.text),
		}
	}

	return sint.Parse(t.text)
}
