package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared application logger.
var Logger = logrus.New()

var once sync.Once

// Init configures the shared logger with a rotating log file. In debug mode
// entries are mirrored to stdout.
func Init(logFile string, debug bool) *logrus.Logger {
	once.Do(func() {
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})

		if debug {
			Logger.SetLevel(logrus.DebugLevel)
		}

		if logFile == "" {
			return
		}

		if dir := filepath.Dir(logFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				Logger.Warnf("Failed to create log directory %s: %v", dir, err)
				return
			}
		}

		rotating := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}

		if debug {
			Logger.SetOutput(io.MultiWriter(os.Stdout, rotating))
		} else {
			Logger.SetOutput(rotating)
		}
	})

	return Logger
}
