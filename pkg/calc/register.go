package calc

// NumRegisters is the fixed stack depth: X, Y, Z, T.
const NumRegisters = 4

// Registers holds the four stack registers. X is the working register and
// T the oldest one.
type Registers struct {
	X, Y, Z, T float64
}

// Reset zeroes every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

// Drop shifts the stack down discarding X. T is duplicated into Z.
func (r *Registers) Drop() {
	r.X, r.Y, r.Z = r.Y, r.Z, r.T
}

// DropSetX shifts the stack down and puts v in X. X and Y are consumed,
// T is duplicated into Z.
func (r *Registers) DropSetX(v float64) {
	r.X, r.Y, r.Z = v, r.Z, r.T
}

// Roll rotates the stack up; the old T comes around into X.
func (r *Registers) Roll() {
	r.X, r.Y, r.Z, r.T = r.T, r.X, r.Y, r.Z
}

// RollSetX pushes v into X. The old T is lost.
func (r *Registers) RollSetX(v float64) {
	r.X, r.Y, r.Z, r.T = v, r.X, r.Y, r.Z
}

// SetX overwrites X only.
func (r *Registers) SetX(v float64) {
	r.X = v
}

// Swap exchanges X and Y.
func (r *Registers) Swap() {
	r.X, r.Y = r.Y, r.X
}

// Slice returns the registers ordered T, Z, Y, X, top of the display first.
func (r Registers) Slice() [NumRegisters]float64 {
	return [NumRegisters]float64{r.T, r.Z, r.Y, r.X}
}
