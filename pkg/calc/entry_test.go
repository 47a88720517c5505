package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/akhildatla/rpncalc/internal/testutil"
)

func TestEntryAddNum(t *testing.T) {
	e := newEngine(t)

	for _, tok := range []string{"1", "2", "x", "", "3.5", "-4", "0", "+7"} {
		e.EntryAddNum(tok)
	}

	if e.Entry() != "1207" {
		t.Errorf("expected %q, got %q", "1207", e.Entry())
	}
}

func TestEntryAddComma_Once(t *testing.T) {
	e := newEngine(t)
	e.EntryAddNum("3")
	e.EntryAddComma()
	e.EntryAddComma()
	e.EntryAddNum("1")
	e.EntryAddComma()

	if got := strings.Count(e.Entry(), DecimalSeparator); got != 1 {
		t.Errorf("expected one separator, got %d in %q", got, e.Entry())
	}
	if e.Entry() != "3,1" {
		t.Errorf("expected %q, got %q", "3,1", e.Entry())
	}
}

func TestEntryChangeSign(t *testing.T) {
	tests := []struct {
		entry string
		want  string
	}{
		{"", "-"},
		{"-5", "+5"},
		{"+5", "-5"},
		{"5", "-5"},
		{",5", "-,5"},
	}

	for _, tt := range tests {
		e := newEngine(t)
		e.entry = tt.entry
		e.EntryChangeSign()
		if e.Entry() != tt.want {
			t.Errorf("EntryChangeSign(%q): expected %q, got %q", tt.entry, tt.want, e.Entry())
		}
	}
}

func TestEnter_CommaSeparator(t *testing.T) {
	e := engineWith(t, Registers{X: 1, Y: 2, Z: 3, T: 4})
	e.EntryAddNum("3")
	e.EntryAddComma()
	e.EntryAddNum("14")

	if err := e.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}

	want := Registers{X: 3.14, Y: 1, Z: 2, T: 3}
	if e.Registers() != want {
		t.Errorf("expected %+v, got %+v", want, e.Registers())
	}
	if e.Entry() != "" {
		t.Errorf("expected entry cleared, got %q", e.Entry())
	}
}

func TestEnter_Signed(t *testing.T) {
	e := newEngine(t)
	e.EntryAddNum("5")
	e.EntryChangeSign()

	if err := e.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	testutil.AssertFloat64Near(t, -5, e.Registers().X, 0)
}

func TestEnter_EmptyIsNoop(t *testing.T) {
	start := Registers{X: 1, Y: 2, Z: 3, T: 4}
	e := engineWith(t, start)

	if err := e.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	if e.Registers() != start {
		t.Errorf("expected %+v, got %+v", start, e.Registers())
	}
}

func TestEnter_Malformed(t *testing.T) {
	for _, entry := range []string{"-", "+", ",", "-,"} {
		t.Run(entry, func(t *testing.T) {
			start := Registers{X: 1, Y: 2, Z: 3, T: 4}
			e := engineWith(t, start)
			e.entry = entry

			err := e.Enter()

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if perr.Source != "entry" || perr.Input != entry {
				t.Errorf("unexpected error detail: %+v", perr)
			}
			if e.Registers() != start {
				t.Errorf("expected registers unchanged, got %+v", e.Registers())
			}
			if e.Entry() != entry {
				t.Errorf("expected entry kept, got %q", e.Entry())
			}
		})
	}
}

func TestEntryClear(t *testing.T) {
	e := newEngine(t)
	e.EntryAddNum("42")
	e.EntryClear()

	if e.Entry() != "" {
		t.Errorf("expected empty entry, got %q", e.Entry())
	}
}
