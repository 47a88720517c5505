package snapshot

import (
	"bytes"
	"context"
	"io"
	"os"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/exports"
	"github.com/rocketlaunchr/dataframe-go/imports"

	"github.com/akhildatla/rpncalc/pkg/calc"
)

// WriteJSON writes st as JSON records, one per register or variable.
// Unset variables are null.
func WriteJSON(ctx context.Context, w io.Writer, st calc.State) error {
	return exports.ExportToJSON(ctx, w, ToFrame(st))
}

// ExportJSON writes st to a JSON file.
func ExportJSON(ctx context.Context, path string, st calc.State) error {
	var buf bytes.Buffer
	if err := WriteJSON(ctx, &buf, st); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// LoadJSON reads a snapshot JSON file into a frame.
func LoadJSON(ctx context.Context, path string) (*dataframe.DataFrame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptySnapshot
	}

	df, err := imports.LoadFromJSON(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if df == nil || len(df.Series) == 0 {
		return nil, ErrEmptySnapshot
	}
	return df, nil
}
