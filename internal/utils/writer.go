package utils

import (
	"testing"
)

// TestWriter forwards everything written to it to the test log, it is mostly used as a logger output.
type TestWriter struct {
	T *testing.T
}

func (w *TestWriter) Write(p []byte) (n int, err error) {
	w.T.Log(string(p))
	return len(p), nil
}
