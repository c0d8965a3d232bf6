package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/star-rating/config"
)

// debugLogging mirrors the default log config with debug toggled
func debugLogging(debug bool) config.LogConfig {
	return config.LogConfig{Debug: debug, Dir: logDir, MaxSizeMB: maxLogSize / megabyte, MaxBackups: 3}
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	if logger := setupLogging(debugLogging(false)); logger != nil {
		t.Error("Expected nil logger when debug=false")
		logger.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(logDir)

	logger := setupLogging(debugLogging(true))
	if logger == nil {
		t.Fatal("Expected non-nil logger when debug=true")
	}
	defer logger.Close()
	defer log.SetOutput(io.Discard)

	logPath := filepath.Join(logDir, logFileName)
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Expected log file to be created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected startup line in log file")
	}

	log.Println("Test log message")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !bytes.Contains(data, []byte("Test log message")) {
		t.Error("Expected log file to contain test message")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	logger := setupLogging(debugLogging(true))
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}
	defer logger.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file below %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_CustomDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger := setupLogging(config.LogConfig{Debug: true, Dir: dir, MaxSizeMB: 1})
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}
	defer logger.Close()
	defer log.SetOutput(io.Discard)

	if output := log.Writer(); output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "logging started") {
		t.Errorf("Expected startup line, got %q", data)
	}
}
