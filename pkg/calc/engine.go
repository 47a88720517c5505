// Package calc implements a four-register RPN calculator engine.
//
// The engine models a classic stack calculator:
//   - four registers X, Y, Z, T; X is the working register
//   - an entry buffer that collects digits before they are committed to X
//   - eight variables A..H
//   - state persisted through a store.Store between sessions
//
// Basic usage:
//
//	e, err := calc.New(store.NewFileStore(path))
//	e.EntryAddNum("3")
//	e.Enter()
//	e.EntryAddNum("4")
//	e.Enter()
//	e.BinOp("+")
//	fmt.Println(e.StackString())
//	err = e.Exit()
//
// Arithmetic never fails: domain errors leave NaN or ±Inf in the register.
// The engine is meant for a single owner and does no locking.
package calc

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/akhildatla/rpncalc/pkg/store"
)

// Engine is the calculator state and its operations.
type Engine struct {
	regs     Registers
	entry    string
	vars     [NumVars]Slot
	selected string

	store  store.Store
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine and loads any state saved in st. A missing record
// leaves the registers zeroed and the variables unset. A record that exists
// but cannot be read or parsed is an error.
func New(st store.Store, opts ...Option) (*Engine, error) {
	if st == nil {
		st = store.NewMemStore()
	}
	e := &Engine{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	data, err := st.Load()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			e.logger.Debug("no saved state, starting empty")
			return e, nil
		}
		return nil, &IOError{Op: "load", Err: err}
	}

	state, err := DecodeState(data)
	if err != nil {
		e.logger.Warn("saved state is malformed", "err", err)
		return nil, err
	}
	e.Restore(state)
	e.logger.Debug("loaded state", "x", state.Registers.X, "vars", e.setVarCount())
	return e, nil
}

// Save writes registers and variables to the store, replacing what was there.
func (e *Engine) Save() error {
	if err := e.store.Save(EncodeState(e.State())); err != nil {
		return &IOError{Op: "save", Err: err}
	}
	e.logger.Debug("saved state", "x", e.regs.X, "vars", e.setVarCount())
	return nil
}

// Exit saves the state at the end of a session.
func (e *Engine) Exit() error {
	return e.Save()
}

// State returns a copy of the persistent part of the engine.
func (e *Engine) State() State {
	return State{Registers: e.regs, Vars: e.vars}
}

// Restore replaces registers and variables with st. The entry buffer and the
// selected variable are left alone.
func (e *Engine) Restore(st State) {
	e.regs = st.Registers
	e.vars = st.Vars
}

// Registers returns a copy of the stack.
func (e *Engine) Registers() Registers {
	return e.regs
}

// ===== Stack movement =====

// Drop discards X and shifts the stack down.
func (e *Engine) Drop() { e.regs.Drop() }

// DropSetX shifts the stack down and puts v in X.
func (e *Engine) DropSetX(v float64) { e.regs.DropSetX(v) }

// Roll rotates the stack up.
func (e *Engine) Roll() { e.regs.Roll() }

// RollSetX pushes v into X, losing T.
func (e *Engine) RollSetX(v float64) { e.regs.RollSetX(v) }

// SetX overwrites X.
func (e *Engine) SetX(v float64) { e.regs.SetX(v) }

// Swap exchanges X and Y.
func (e *Engine) Swap() { e.regs.Swap() }

// ===== Operation dispatch =====

// BinOp applies the binary operator labelled symbol. Unknown labels are
// ignored.
func (e *Engine) BinOp(symbol string) {
	if op, ok := ParseBinaryOp(symbol); ok {
		e.ApplyBinary(op)
	}
}

// Unop applies the unary operator labelled symbol. Unknown labels are
// ignored.
func (e *Engine) Unop(symbol string) {
	if op, ok := ParseUnaryOp(symbol); ok {
		e.ApplyUnary(op)
	}
}

// Nilop pushes the constant labelled symbol. Unknown labels are ignored.
func (e *Engine) Nilop(symbol string) {
	if op, ok := ParseNilaryOp(symbol); ok {
		e.ApplyNilary(op)
	}
}

// ApplyBinary computes op(Y, X) and drops it into X.
func (e *Engine) ApplyBinary(op BinaryOp) {
	if !op.Valid() {
		return
	}
	e.regs.DropSetX(op.Apply(e.regs.Y, e.regs.X))
}

// ApplyUnary replaces X with op(X).
func (e *Engine) ApplyUnary(op UnaryOp) {
	if !op.Valid() {
		return
	}
	e.regs.SetX(op.Apply(e.regs.X))
}

// ApplyNilary pushes the constant for op.
func (e *Engine) ApplyNilary(op NilaryOp) {
	if !op.Valid() {
		return
	}
	e.regs.RollSetX(op.Value())
}

// ===== Presentation =====

// StackString returns T, Z, Y, X and the entry buffer, one per line.
func (e *Engine) StackString() string {
	var b strings.Builder
	for _, v := range e.regs.Slice() {
		b.WriteString(FormatNumber(v))
		b.WriteByte('\n')
	}
	b.WriteString(e.entry)
	return b.String()
}

// VarString returns the eight variable slots, one per line, followed by the
// selected variable name.
func (e *Engine) VarString() string {
	var b strings.Builder
	for _, s := range e.vars {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	b.WriteString(e.selected)
	return b.String()
}

func (e *Engine) setVarCount() int {
	n := 0
	for _, s := range e.vars {
		if s.Set {
			n++
		}
	}
	return n
}
