// Package logger builds the zap logger used by the utf8slice command.
package logger

import (
	"io"

	"github.com/dpinela/utf8slice/internal/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to w at the level named in cfg, or at debug level if
// verbose is set. If cfg.File is set, everything is also written to that file, which
// is rotated once it grows past 10 megabytes.
func New(cfg config.LogConfig, verbose bool, w io.Writer) (*zap.SugaredLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}
	if verbose {
		level = zap.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	sink := zapcore.AddSync(w)
	cores := []zapcore.Core{zapcore.NewCore(encoder, sink, level)}
	if cfg.File != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
		cores = append(cores, zapcore.NewCore(encoder, fileWriter, level))
	}
	return zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(sink)).Sugar(), nil
}
