package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "antsim.log"
	maxLogSize  = 10 * 1024 * 1024
	rotateStamp = "20060102-150405"
)

// rotatedName is the archive name of the log at now, e.g. antsim-20261017-150405.log
func rotatedName(now time.Time) string {
	base := strings.TrimSuffix(logFileName, filepath.Ext(logFileName))
	return fmt.Sprintf("%s-%s.log", base, now.Format(rotateStamp))
}

// setupLogging routes the standard logger to logs/antsim.log when debug is set
// and discards it otherwise; the terminal belongs to the viewer
// A log above maxLogSize is renamed with a timestamp before a fresh one opens
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(logPath, filepath.Join(logDir, rotatedName(time.Now())))
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("antsim: logging started")
	return f
}
