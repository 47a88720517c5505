// Package snapshot exports and imports calculator state as tabular files.
//
// A snapshot is a two-column frame built with dataframe-go:
//
//	name  value
//	X     4
//	Y     3.5
//	...
//	A     42
//	B     <nil>    (unset)
//
// The file format follows the extension: .csv, .json/.jsonl or .parquet.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/akhildatla/rpncalc/pkg/calc"
)

// Column names
const (
	ColName  = "name"
	ColValue = "value"
)

// Error definitions
var (
	ErrUnknownFormat   = errors.New("unknown snapshot format")
	ErrMissingColumn   = errors.New("snapshot column missing")
	ErrMissingRegister = errors.New("snapshot register missing")
	ErrEmptySnapshot   = errors.New("empty snapshot")
)

// Format is a snapshot file format.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatParquet
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatParquet:
		return "parquet"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json", ".jsonl":
		return FormatJSON, nil
	case ".parquet":
		return FormatParquet, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Export writes st to path in the format given by its extension.
func Export(ctx context.Context, path string, st calc.State) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatCSV:
		return ExportCSV(ctx, path, st)
	case FormatJSON:
		return ExportJSON(ctx, path, st)
	default:
		return ExportParquet(ctx, path, st)
	}
}

// Import reads a state from path in the format given by its extension.
func Import(ctx context.Context, path string) (calc.State, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return calc.State{}, err
	}

	var df *dataframe.DataFrame
	switch format {
	case FormatCSV:
		df, err = LoadCSV(ctx, path)
	case FormatJSON:
		df, err = LoadJSON(ctx, path)
	default:
		df, err = LoadParquet(ctx, path)
	}
	if err != nil {
		return calc.State{}, fmt.Errorf("loading %s snapshot %s: %w", format, path, err)
	}
	return FromFrame(df)
}

// ToFrame converts st into a name/value frame. Unset variables are nil.
func ToFrame(st calc.State) *dataframe.DataFrame {
	r := st.Registers
	names := []interface{}{"X", "Y", "Z", "T"}
	values := []interface{}{
		calc.FormatNumber(r.X),
		calc.FormatNumber(r.Y),
		calc.FormatNumber(r.Z),
		calc.FormatNumber(r.T),
	}
	for i, s := range st.Vars {
		names = append(names, calc.VarName(i))
		if s.Set {
			values = append(values, s.Value)
		} else {
			values = append(values, nil)
		}
	}

	return dataframe.NewDataFrame(
		dataframe.NewSeriesString(ColName, nil, names...),
		dataframe.NewSeriesString(ColValue, nil, values...),
	)
}

// FromFrame converts a name/value frame back into a state. All four
// registers must be present; variables that are missing, nil or empty are
// unset. Rows with other names are ignored.
func FromFrame(df *dataframe.DataFrame) (calc.State, error) {
	var st calc.State

	if df == nil || df.NRows() == 0 {
		return st, ErrEmptySnapshot
	}
	nameIdx, err := df.NameToColumn(ColName)
	if err != nil {
		return st, fmt.Errorf("%w: %s", ErrMissingColumn, ColName)
	}
	valueIdx, err := df.NameToColumn(ColValue)
	if err != nil {
		return st, fmt.Errorf("%w: %s", ErrMissingColumn, ColValue)
	}
	names, values := df.Series[nameIdx], df.Series[valueIdx]

	var regs [calc.NumRegisters]float64
	var seen [calc.NumRegisters]bool
	for row := 0; row < names.NRows(); row++ {
		name, _ := cellString(names.Value(row))
		value, ok := cellString(values.Value(row))

		if i := strings.Index("XYZT", name); len(name) == 1 && i >= 0 {
			v, err := calc.ParseNumber(value)
			if err != nil {
				return st, &calc.ParseError{Source: "snapshot register " + name, Input: value, Err: err}
			}
			regs[i], seen[i] = v, true
			continue
		}
		if i, isVar := calc.VarIndex(name); isVar && ok && value != "" {
			st.Vars[i] = calc.Slot{Value: value, Set: true}
		}
	}

	for i, ok := range seen {
		if !ok {
			return st, fmt.Errorf("%w: %s", ErrMissingRegister, "XYZT"[i:i+1])
		}
	}
	st.Registers = calc.Registers{X: regs[0], Y: regs[1], Z: regs[2], T: regs[3]}
	return st, nil
}

// cellString renders a frame cell as text. Loaders may infer numeric column
// types, so numbers are formatted back the way the engine stores them.
func cellString(v interface{}) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case float64:
		return calc.FormatNumber(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	default:
		return fmt.Sprint(x), true
	}
}
