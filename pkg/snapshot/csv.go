package snapshot

import (
	"context"
	"io"
	"os"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/exports"
	"github.com/rocketlaunchr/dataframe-go/imports"

	"github.com/akhildatla/rpncalc/pkg/calc"
)

// WriteCSV writes st as CSV with a name,value header. Unset variables are
// empty cells.
func WriteCSV(ctx context.Context, w io.Writer, st calc.State) error {
	null := ""
	return exports.ExportToCSV(ctx, w, ToFrame(st), exports.CSVExportOptions{
		NullString: &null,
		Separator:  ',',
	})
}

// ExportCSV writes st to a CSV file.
func ExportCSV(ctx context.Context, path string, st calc.State) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(ctx, f, st); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadCSV reads a snapshot CSV file into a frame. Values stay text; the
// engine parses them.
func LoadCSV(ctx context.Context, path string) (*dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	df, err := imports.LoadFromCSV(ctx, file)
	if err != nil {
		return nil, err
	}
	if df == nil || len(df.Series) == 0 {
		return nil, ErrEmptySnapshot
	}
	return df, nil
}
