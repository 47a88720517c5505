package calc

import (
	"errors"
	"math"
	"testing"
)

func TestGetVar_Unset(t *testing.T) {
	start := Registers{X: 1, Y: 2, Z: 3, T: 4}
	e := engineWith(t, start)
	e.SetAddress("D")

	err := e.GetVar()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrUnsetVariable) {
		t.Errorf("expected ErrUnsetVariable, got %v", err)
	}
	if e.Registers() != start {
		t.Errorf("expected registers unchanged, got %+v", e.Registers())
	}
}

func TestSetVarGetVar_RoundTrip(t *testing.T) {
	values := []float64{0, -0.1, math.Pi, 1e-300, 123456789.125, math.Inf(1)}

	for _, v := range values {
		e := engineWith(t, Registers{X: v, Y: 2, Z: 3, T: 4})
		e.SetAddress("F")
		e.SetVar()

		if err := e.GetVar(); err != nil {
			t.Fatalf("GetVar failed: %v", err)
		}

		want := Registers{X: v, Y: v, Z: 2, T: 3}
		if e.Registers() != want {
			t.Errorf("expected %+v, got %+v", want, e.Registers())
		}
	}
}

func TestGetVar_Malformed(t *testing.T) {
	start := Registers{X: 1}
	e := engineWith(t, start)
	e.vars[0] = Slot{Value: "abc", Set: true}
	e.SetAddress("A")

	err := e.GetVar()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if perr.Input != "abc" {
		t.Errorf("expected input abc, got %q", perr.Input)
	}
	if e.Registers() != start {
		t.Errorf("expected registers unchanged, got %+v", e.Registers())
	}
}

func TestGetVar_CommaValue(t *testing.T) {
	e := newEngine(t)
	e.vars[1] = Slot{Value: "2,5", Set: true}
	e.SetAddress("B")

	if err := e.GetVar(); err != nil {
		t.Fatalf("GetVar failed: %v", err)
	}
	if e.Registers().X != 2.5 {
		t.Errorf("expected 2.5, got %v", e.Registers().X)
	}
}

func TestVar_UnknownNameIsNoop(t *testing.T) {
	start := Registers{X: 1, Y: 2, Z: 3, T: 4}
	e := engineWith(t, start)

	for _, name := range []string{"", "I", "a", "AB", "Z"} {
		e.SetAddress(name)
		e.SetVar()
		if err := e.GetVar(); err != nil {
			t.Errorf("GetVar(%q): expected no-op, got %v", name, err)
		}
		if e.Selected() != name {
			t.Errorf("expected selected %q, got %q", name, e.Selected())
		}
	}

	if e.Registers() != start {
		t.Errorf("expected registers unchanged, got %+v", e.Registers())
	}
	for i, s := range e.State().Vars {
		if s.Set {
			t.Errorf("expected slot %s unset, got %+v", VarName(i), s)
		}
	}
	if _, ok := e.Var("Q"); ok {
		t.Error("expected Var(Q) to report unknown")
	}
}

func TestSetVar_OverwritesSlot(t *testing.T) {
	e := engineWith(t, Registers{X: 1})
	e.SetAddress("A")
	e.SetVar()
	e.SetX(2)
	e.SetVar()

	s, ok := e.Var("A")
	if !ok || s.Value != "2" {
		t.Errorf("expected A=2, got %+v", s)
	}
}
