package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init replaces the global zap logger. Use zap.L() everywhere else.
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch env {
	case "development", "local", "test":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
