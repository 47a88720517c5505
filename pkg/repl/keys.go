package repl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/akhildatla/rpncalc/pkg/calc"
)

// Error definitions
var (
	ErrUnknownKey  = errors.New("unknown key")
	ErrMissingName = errors.New("missing variable name")
)

var numberLiteral = regexp.MustCompile(`^[+-]?(\d+([.,]\d*)?|[.,]\d+)$`)

// Apply presses each key in tokens on the engine, stopping at the first
// failure.
//
// Keys:
//
//	3  -2,5  1.5     type the number and enter it
//	#12              type digits into the entry without entering
//	,  .             decimal separator
//	chs enter clx    change sign, enter, clear entry
//	drop roll swap   stack movement
//	sto A  rcl A     store X in / recall from a variable
//	+ − × ÷ ...      operators (ASCII aliases accepted)
//
// A pending entry is entered before any stack or operator key, like the
// automatic enter of a hardware calculator.
func Apply(e *calc.Engine, tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case numberLiteral.MatchString(tok):
			if err := e.Enter(); err != nil {
				return err
			}
			typeNumber(e, tok)
			if err := e.Enter(); err != nil {
				return err
			}

		case strings.HasPrefix(tok, "#") && len(tok) > 1:
			for _, c := range tok[1:] {
				if c < '0' || c > '9' {
					return fmt.Errorf("%w: %s", ErrUnknownKey, tok)
				}
				e.EntryAddNum(string(c))
			}

		case tok == "," || tok == ".":
			e.EntryAddComma()
		case tok == "chs":
			e.EntryChangeSign()
		case tok == "enter":
			if err := e.Enter(); err != nil {
				return err
			}
		case tok == "clx":
			e.EntryClear()

		case tok == "sto" || tok == "rcl":
			if i+1 >= len(tokens) {
				return fmt.Errorf("%w after %s", ErrMissingName, tok)
			}
			i++
			if err := e.Enter(); err != nil {
				return err
			}
			e.SetAddress(strings.ToUpper(tokens[i]))
			if tok == "sto" {
				e.SetVar()
			} else if err := e.GetVar(); err != nil {
				return err
			}

		default:
			if err := pressOp(e, tok); err != nil {
				return err
			}
		}
	}
	return nil
}

func pressOp(e *calc.Engine, tok string) error {
	var apply func()
	switch tok {
	case "drop":
		apply = e.Drop
	case "roll":
		apply = e.Roll
	case "swap":
		apply = e.Swap
	default:
		if op, ok := calc.ParseBinaryOp(tok); ok {
			apply = func() { e.ApplyBinary(op) }
		} else if op, ok := calc.ParseUnaryOp(tok); ok {
			apply = func() { e.ApplyUnary(op) }
		} else if op, ok := calc.ParseNilaryOp(tok); ok {
			apply = func() { e.ApplyNilary(op) }
		} else {
			return fmt.Errorf("%w: %s", ErrUnknownKey, tok)
		}
	}

	if err := e.Enter(); err != nil {
		return err
	}
	apply()
	return nil
}

// typeNumber keys a number literal into the entry: digits, then the
// separator, then the sign.
func typeNumber(e *calc.Engine, lit string) {
	negative := strings.HasPrefix(lit, "-")
	for _, c := range strings.TrimLeft(lit, "+-") {
		if c == '.' || c == ',' {
			e.EntryAddComma()
			continue
		}
		e.EntryAddNum(string(c))
	}
	if negative {
		e.EntryChangeSign()
	}
}
