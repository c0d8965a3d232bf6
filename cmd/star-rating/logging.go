package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/star-rating/config"
)

const (
	logDir      = "logs"
	logFileName = "star-rating.log"
	megabyte    = 1024 * 1024
	maxLogSize  = 10 * megabyte
)

// setupLogging discards log output unless cfg.Debug; returns nil when discarding
func setupLogging(cfg config.LogConfig) *lumberjack.Logger {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = logDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = maxLogSize / megabyte
	}

	logger := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    maxSize,
		MaxBackups: cfg.MaxBackups,
	}
	log.SetOutput(logger)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	// First write opens the file, rotating an oversized one
	log.Printf("star-rating: logging started (pid %d)", os.Getpid())
	return logger
}
