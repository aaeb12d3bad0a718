package model

import (
	"io"
	"os"
	"testing"

	"wordle/pkg/logging"
)

func TestMain(m *testing.M) {
	// Initialize the logger before any tests run
	logging.InitForCLI(logging.LevelError, io.Discard)

	os.Exit(m.Run())
}
