package calc

import "math"

// BinaryOp consumes Y and X and leaves one result in X.
type BinaryOp uint8

const (
	OpAdd  BinaryOp = iota // Y + X
	OpSub                  // Y - X
	OpMul                  // Y * X
	OpDiv                  // Y / X
	OpPow                  // Y ^ X
	OpRoot                 // Y ^ (1/X)

	numBinaryOps
)

// UnaryOp replaces X with a function of X.
type UnaryOp uint8

const (
	OpSquare UnaryOp = iota // X * X
	OpSqrt                  // √X
	OpLog10                 // log10 X
	OpLn                    // ln X
	OpExp10                 // 10 ^ X
	OpExp                   // e ^ X
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan

	numUnaryOps
)

// NilaryOp pushes a constant.
type NilaryOp uint8

const (
	OpPi NilaryOp = iota
	OpE

	numNilaryOps
)

var binaryFuncs = [numBinaryOps]func(y, x float64) float64{
	OpAdd:  func(y, x float64) float64 { return y + x },
	OpSub:  func(y, x float64) float64 { return y - x },
	OpMul:  func(y, x float64) float64 { return y * x },
	OpDiv:  func(y, x float64) float64 { return y / x },
	OpPow:  math.Pow,
	OpRoot: func(y, x float64) float64 { return math.Pow(y, 1/x) },
}

var unaryFuncs = [numUnaryOps]func(x float64) float64{
	OpSquare: func(x float64) float64 { return x * x },
	OpSqrt:   math.Sqrt,
	OpLog10:  math.Log10,
	OpLn:     math.Log,
	OpExp10:  func(x float64) float64 { return math.Pow(10, x) },
	OpExp:    math.Exp,
	OpSin:    math.Sin,
	OpCos:    math.Cos,
	OpTan:    math.Tan,
	OpAsin:   math.Asin,
	OpAcos:   math.Acos,
	OpAtan:   math.Atan,
}

var nilaryConsts = [numNilaryOps]float64{
	OpPi: math.Pi,
	OpE:  math.E,
}

// Apply evaluates the operator with Y as the left operand.
func (o BinaryOp) Apply(y, x float64) float64 {
	return binaryFuncs[o](y, x)
}

// Apply evaluates the operator on x.
func (o UnaryOp) Apply(x float64) float64 {
	return unaryFuncs[o](x)
}

// Value returns the constant the operator pushes.
func (o NilaryOp) Value() float64 {
	return nilaryConsts[o]
}

// Valid reports whether o is a defined operator.
func (o BinaryOp) Valid() bool { return o < numBinaryOps }

// Valid reports whether o is a defined operator.
func (o UnaryOp) Valid() bool { return o < numUnaryOps }

// Valid reports whether o is a defined operator.
func (o NilaryOp) Valid() bool { return o < numNilaryOps }

// String returns the key label of the operator.
func (o BinaryOp) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	case OpPow:
		return "yˣ"
	case OpRoot:
		return "ˣ√y"
	default:
		return "UNKNOWN"
	}
}

// String returns the key label of the operator.
func (o UnaryOp) String() string {
	switch o {
	case OpSquare:
		return "x²"
	case OpSqrt:
		return "√x"
	case OpLog10:
		return "log x"
	case OpLn:
		return "ln x"
	case OpExp10:
		return "10ˣ"
	case OpExp:
		return "eˣ"
	case OpSin:
		return "sin"
	case OpCos:
		return "cos"
	case OpTan:
		return "tan"
	case OpAsin:
		return "sin⁻¹"
	case OpAcos:
		return "cos⁻¹"
	case OpAtan:
		return "tan⁻¹"
	default:
		return "UNKNOWN"
	}
}

// String returns the key label of the operator.
func (o NilaryOp) String() string {
	switch o {
	case OpPi:
		return "π"
	case OpE:
		return "e"
	default:
		return "UNKNOWN"
	}
}

// ParseBinaryOp resolves a key label or its ASCII alias.
func ParseBinaryOp(symbol string) (BinaryOp, bool) {
	switch symbol {
	case "+", "add":
		return OpAdd, true
	case "−", "-", "sub":
		return OpSub, true
	case "×", "*", "mul":
		return OpMul, true
	case "÷", "/", "div":
		return OpDiv, true
	case "yˣ", "^", "pow":
		return OpPow, true
	case "ˣ√y", "root":
		return OpRoot, true
	default:
		return 0, false
	}
}

// ParseUnaryOp resolves a key label or its ASCII alias.
func ParseUnaryOp(symbol string) (UnaryOp, bool) {
	switch symbol {
	case "x²", "sq":
		return OpSquare, true
	case "√x", "sqrt":
		return OpSqrt, true
	case "log x", "log":
		return OpLog10, true
	case "ln x", "ln":
		return OpLn, true
	case "10ˣ", "alog":
		return OpExp10, true
	case "eˣ", "exp":
		return OpExp, true
	case "sin":
		return OpSin, true
	case "cos":
		return OpCos, true
	case "tan":
		return OpTan, true
	case "sin⁻¹", "asin":
		return OpAsin, true
	case "cos⁻¹", "acos":
		return OpAcos, true
	case "tan⁻¹", "atan":
		return OpAtan, true
	default:
		return 0, false
	}
}

// ParseNilaryOp resolves a key label or its ASCII alias.
func ParseNilaryOp(symbol string) (NilaryOp, bool) {
	switch symbol {
	case "π", "pi":
		return OpPi, true
	case "e":
		return OpE, true
	default:
		return 0, false
	}
}

// BinaryOps lists every binary operator in key order.
func BinaryOps() []BinaryOp {
	ops := make([]BinaryOp, 0, numBinaryOps)
	for o := BinaryOp(0); o < numBinaryOps; o++ {
		ops = append(ops, o)
	}
	return ops
}

// UnaryOps lists every unary operator in key order.
func UnaryOps() []UnaryOp {
	ops := make([]UnaryOp, 0, numUnaryOps)
	for o := UnaryOp(0); o < numUnaryOps; o++ {
		ops = append(ops, o)
	}
	return ops
}

// NilaryOps lists every constant in key order.
func NilaryOps() []NilaryOp {
	ops := make([]NilaryOp, 0, numNilaryOps)
	for o := NilaryOp(0); o < numNilaryOps; o++ {
		ops = append(ops, o)
	}
	return ops
}
