package logger

import (
	"fmt"

	"github.com/GlebRadaev/pointpay/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger builds the process logger from conf and installs it as zap.L().
func InitLogger(conf *config.Config, name string) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch conf.LogFormat {
	case "", "console":
		encodeConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}
	encoding := conf.LogFormat
	if encoding == "" {
		encoding = "console"
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named(name))

	return nil
}
