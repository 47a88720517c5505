package snapshot

import (
	"context"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/exports"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/xitongsys/parquet-go-source/local"

	"github.com/akhildatla/rpncalc/pkg/calc"
)

// ExportParquet writes st to a Parquet file through a local file writer.
func ExportParquet(ctx context.Context, path string, st calc.State) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}

	if err := exports.ExportToParquet(ctx, fw, ToFrame(st)); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

// LoadParquet reads a snapshot Parquet file into a frame.
func LoadParquet(ctx context.Context, path string) (*dataframe.DataFrame, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fr.Close()

	df, err := imports.LoadFromParquet(ctx, fr)
	if err != nil {
		return nil, err
	}
	if df == nil || len(df.Series) == 0 {
		return nil, ErrEmptySnapshot
	}
	return df, nil
}
