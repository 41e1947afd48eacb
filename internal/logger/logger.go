package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joshua-takyi/cinema/internal/config"
)

// New returns a JSON logger in production and a console logger otherwise.
// LOG_LEVEL overrides the default level when it parses.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.LogLevel != "" {
		if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
			zc.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	return zc.Build(zap.Fields(zap.String("service", "cinema-api")))
}
