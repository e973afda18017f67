package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params configures the application logger
type Params struct {
	File       string // empty discards all output
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

// Setup builds the application logger. Output goes to a rotated file
// because the terminal belongs to the UI.
func Setup(params Params) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	level := logrus.InfoLevel
	if params.Level != "" {
		parsed, err := logrus.ParseLevel(params.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		level = parsed
	}
	log.SetLevel(level)

	if params.File == "" {
		log.SetOutput(io.Discard)
		return log, nil
	}

	if err := os.MkdirAll(filepath.Dir(params.File), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   params.File,
		MaxSize:    params.MaxSizeMB, // megabytes
		MaxBackups: params.MaxBackups,
		LocalTime:  true,
	})
	return log, nil
}
