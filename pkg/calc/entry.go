package calc

import (
	"strconv"
	"strings"
)

// DecimalSeparator is the separator the entry buffer collects.
const DecimalSeparator = ","

// Entry returns the pending entry text.
func (e *Engine) Entry() string {
	return e.entry
}

// EntryAddNum appends token if it is a non-negative integer. Anything else
// is ignored.
func (e *Engine) EntryAddNum(token string) {
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return
	}
	e.entry += strconv.Itoa(n)
}

// EntryAddComma appends the decimal separator unless the entry already has
// one.
func (e *Engine) EntryAddComma() {
	if !strings.Contains(e.entry, DecimalSeparator) {
		e.entry += DecimalSeparator
	}
}

// EntryChangeSign flips a leading sign, or prepends '-' when there is none.
func (e *Engine) EntryChangeSign() {
	switch {
	case strings.HasPrefix(e.entry, "+"):
		e.entry = "-" + e.entry[1:]
	case strings.HasPrefix(e.entry, "-"):
		e.entry = "+" + e.entry[1:]
	default:
		e.entry = "-" + e.entry
	}
}

// EntryClear discards the pending entry.
func (e *Engine) EntryClear() {
	e.entry = ""
}

// Enter commits the entry to X, pushing the stack up. An empty entry is a
// no-op. If the entry is not a number, nothing changes and a *ParseError is
// returned.
func (e *Engine) Enter() error {
	if e.entry == "" {
		return nil
	}
	v, err := ParseNumber(e.entry)
	if err != nil {
		return &ParseError{Source: "entry", Input: e.entry, Err: err}
	}
	e.regs.RollSetX(v)
	e.entry = ""
	return nil
}
