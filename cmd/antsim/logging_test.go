package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("expected nil log file when debug=false")
		logFile.Close()
	}

	output := log.Writer()
	if output != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("expected logs directory to be created")
	}

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("expected log file to be created")
	}

	log.Println("tick 1 delivered 0")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("failed to create logs directory: %v", err)
	}

	logPath := filepath.Join(logDir, logFileName)

	big, err := os.Create(logPath)
	if err != nil {
		t.Fatalf("failed to create oversized log file: %v", err)
	}

	data := make([]byte, maxLogSize+1)
	if _, err := big.Write(data); err != nil {
		t.Fatalf("failed to fill log file: %v", err)
	}
	big.Close()

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("failed to read logs directory: %v", err)
	}

	var rotated string
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotated = entry.Name()
			break
		}
	}

	if rotated == "" {
		t.Fatal("expected a timestamped rotated log")
	}
	stamp, ok := strings.CutPrefix(strings.TrimSuffix(rotated, ".log"), "antsim-")
	if !ok {
		t.Errorf("expected rotated log named antsim-<stamp>.log, got %q", rotated)
	} else if _, err := time.Parse(rotateStamp, stamp); err != nil {
		t.Errorf("expected stamp in %s layout, got %q: %v", rotateStamp, stamp, err)
	}
	if info, err := os.Stat(filepath.Join(logDir, rotated)); err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("expected rotated log to keep the oversized content, got %v (err=%v)", info, err)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("expected fresh log file below %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestRotatedName(t *testing.T) {
	now := time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)
	if got, want := rotatedName(now), "antsim-20261017-150405.log"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSetupLogging_KeepsTerminalClean(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected non-nil log file")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout {
		t.Error("log output must not be stdout")
	}
	if output == os.Stderr {
		t.Error("log output must not be stderr")
	}
}
