// Package logger builds the process logger.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a zap sugared logger. Mode "prod"/"production" selects the JSON
// production config; anything else gets the development console config.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return zl.Sugar(), nil
}
