package diag

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_NoOutputIsNop(t *testing.T) {
	logger, closeFn, err := New(Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeFn()
	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Fatalf("nop logger should not be enabled")
	}
}

func TestNew_WriterRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("log tail event", zap.String("data", "hidden"))
	logger.Info("log tail activated")
	_ = closeFn()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written without Verbose: %q", out)
	}
	if !strings.Contains(out, "log tail activated") || !strings.Contains(out, "I") {
		t.Fatalf("info line missing: %q", out)
	}

	buf.Reset()
	logger, closeFn, err = New(Options{Writer: &buf, Verbose: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("log tail event", zap.String("data", "build ok"))
	_ = closeFn()
	if out := buf.String(); !strings.Contains(out, "build ok") {
		t.Fatalf("debug line missing with Verbose: %q", out)
	}
}

func TestNew_FileCreatesDirsAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tailview.log")

	for _, msg := range []string{"first", "second"} {
		logger, closeFn, err := New(Options{Path: path})
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		logger.Info(msg)
		if err := closeFn(); err != nil {
			t.Fatalf("close returned error: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("diag log = %q, want both lines", data)
	}
}
