package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/adamh-utopi/Payload-decoders/internal/config"
)

// Configure sets up the standard logrus logger: text output to console and,
// when LogFilePath is set, a rotating log file receiving every level. The
// returned closer releases the log file.
func Configure(settings config.Settings, console io.Writer) (io.Closer, error) {
	return configure(log.StandardLogger(), settings, console)
}

func configure(logger *log.Logger, settings config.Settings, console io.Writer) (io.Closer, error) {
	if console == nil {
		console = os.Stderr
	}
	logger.SetLevel(settings.GetLogLevel())
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetOutput(console)
	logger.ReplaceHooks(make(log.LevelHooks))

	if settings.LogFilePath == "" {
		return nopCloser{}, nil
	}

	logDir := filepath.Dir(settings.LogFilePath)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", logDir, err)
	}

	file := &lumberjack.Logger{
		Filename:   settings.LogFilePath,
		MaxSize:    100,
		MaxBackups: 30,
		MaxAge:     settings.LogMaxAgeDays,
		Compress:   true,
	}

	fileFmt := &log.TextFormatter{DisableColors: true, FullTimestamp: true}
	logger.AddHook(lfshook.NewHook(lfshook.WriterMap{
		log.PanicLevel: file,
		log.FatalLevel: file,
		log.ErrorLevel: file,
		log.WarnLevel:  file,
		log.InfoLevel:  file,
		log.DebugLevel: file,
		log.TraceLevel: file,
	}, fileFmt))
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
