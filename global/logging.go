package global

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const TimeLayoutDefault = "01-02 15:04:05.000"

// NewLogger creates a named console logger. Empty name means the root logger
func NewLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayoutDefault)
	cfg.EncodeDuration = zapcore.SecondsDurationEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stdout),
		zap.NewAtomicLevelAt(level),
	)
	ret := zap.New(core).Sugar()
	if name != "" {
		ret = ret.Named(name)
	}
	return ret
}
