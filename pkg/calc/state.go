package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// State record format:
//   - X;Y;Z;T as shortest round-trip decimals
//   - the 8 variable slots A..H, empty when unset
//   - every field terminated by ';'
//
// Decoding accepts ',' as the decimal separator so that records written with
// a comma locale still load.

const (
	// NumVars is the number of variable slots.
	NumVars = 8

	// VarNames maps slot index to variable name.
	VarNames = "ABCDEFGH"

	fieldSep     = ";"
	recordFields = NumRegisters + NumVars
)

var registerNames = [NumRegisters]string{"X", "Y", "Z", "T"}

// Slot is one variable. Value holds the decimal text and is meaningful only
// when Set is true.
type Slot struct {
	Value string
	Set   bool
}

// String returns the slot text, empty when unset.
func (s Slot) String() string {
	if !s.Set {
		return ""
	}
	return s.Value
}

// State is everything that survives between sessions.
type State struct {
	Registers Registers
	Vars      [NumVars]Slot
}

// VarIndex returns the slot index for a variable name A..H.
func VarIndex(name string) (int, bool) {
	if len(name) != 1 {
		return 0, false
	}
	i := strings.IndexByte(VarNames, name[0])
	return i, i >= 0
}

// VarName returns the name of slot i.
func VarName(i int) string {
	return VarNames[i : i+1]
}

// FormatNumber renders v the way registers and variables are stored and
// displayed.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseNumber parses a stored or typed number. ',' is accepted as the
// decimal separator. Out-of-range magnitudes become ±Inf.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// EncodeState serializes st to the record format.
func EncodeState(st State) []byte {
	var b strings.Builder
	for _, v := range [NumRegisters]float64{st.Registers.X, st.Registers.Y, st.Registers.Z, st.Registers.T} {
		b.WriteString(FormatNumber(v))
		b.WriteString(fieldSep)
	}
	for _, s := range st.Vars {
		b.WriteString(s.String())
		b.WriteString(fieldSep)
	}
	return []byte(b.String())
}

// DecodeState parses a record. Variable fields are copied verbatim; they are
// only parsed when recalled.
func DecodeState(data []byte) (State, error) {
	var st State

	fields := strings.Split(string(data), fieldSep)
	if len(fields) < recordFields {
		return st, &ParseError{
			Source: "state",
			Err:    fmt.Errorf("%w: got %d, need %d", ErrFieldCount, len(fields), recordFields),
		}
	}

	var regs [NumRegisters]float64
	for i := range regs {
		v, err := ParseNumber(fields[i])
		if err != nil {
			return st, &ParseError{
				Source: fmt.Sprintf("state field %d (%s)", i+1, registerNames[i]),
				Input:  fields[i],
				Err:    err,
			}
		}
		regs[i] = v
	}
	st.Registers = Registers{X: regs[0], Y: regs[1], Z: regs[2], T: regs[3]}

	for i := range st.Vars {
		if f := fields[NumRegisters+i]; f != "" {
			st.Vars[i] = Slot{Value: f, Set: true}
		}
	}
	return st, nil
}
