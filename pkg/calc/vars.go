package calc

// SetAddress selects the variable used by SetVar and GetVar. Names outside
// A..H are accepted but address nothing.
func (e *Engine) SetAddress(name string) {
	e.selected = name
}

// Selected returns the last selected variable name.
func (e *Engine) Selected() string {
	return e.selected
}

// SetVar stores X in the selected variable.
func (e *Engine) SetVar() {
	i, ok := VarIndex(e.selected)
	if !ok {
		return
	}
	e.vars[i] = Slot{Value: FormatNumber(e.regs.X), Set: true}
}

// GetVar pushes the selected variable onto the stack. An unset or
// unparsable slot returns a *ParseError and leaves the stack unchanged.
func (e *Engine) GetVar() error {
	i, ok := VarIndex(e.selected)
	if !ok {
		return nil
	}
	slot := e.vars[i]
	source := "variable " + e.selected
	if !slot.Set {
		return &ParseError{Source: source, Err: ErrUnsetVariable}
	}
	v, err := ParseNumber(slot.Value)
	if err != nil {
		return &ParseError{Source: source, Input: slot.Value, Err: err}
	}
	e.regs.RollSetX(v)
	return nil
}

// Var returns the slot for name.
func (e *Engine) Var(name string) (Slot, bool) {
	i, ok := VarIndex(name)
	if !ok {
		return Slot{}, false
	}
	return e.vars[i], true
}
