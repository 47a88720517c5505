// Package testutil provides testing utilities for rpncalc tests.
package testutil

import (
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// TempState writes a state record into a fresh temporary directory and
// returns its path. The file is removed when the test finishes.
func TempState(t *testing.T, content string) string {
	t.Helper()
	path := StatePath(t)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp state: %v", err)
	}
	return path
}

// StatePath returns a state file path in a fresh temporary directory without
// creating the file.
func StatePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "molkfreecalc.clc")
}

// TempFile returns a path with the given extension in a fresh temporary
// directory without creating the file.
func TempFile(t *testing.T, ext string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test"+ext)
}

// SampleState returns a record with every register and two variables set.
func SampleState() string {
	return "1.5;-2;300;0.25;42;;;;;;;-0.125;"
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// AssertFloat64Near checks if two float64 values are approximately equal.
func AssertFloat64Near(t *testing.T, expected, actual, tolerance float64) {
	t.Helper()
	if actual < expected-tolerance || actual > expected+tolerance {
		t.Errorf("expected %.6f, got %.6f (tolerance: %.6f)", expected, actual, tolerance)
	}
}

// AssertNaN checks that v is NaN.
func AssertNaN(t *testing.T, v float64) {
	t.Helper()
	if !math.IsNaN(v) {
		t.Errorf("expected NaN, got %v", v)
	}
}

// AssertInf checks that v is an infinity of the given sign.
func AssertInf(t *testing.T, v float64, sign int) {
	t.Helper()
	if !math.IsInf(v, sign) {
		t.Errorf("expected Inf(%d), got %v", sign, v)
	}
}
