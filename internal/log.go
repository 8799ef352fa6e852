package internal

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.SugaredLogger
	loggerOnce sync.Once
)

// GetLogger returns the process-wide sugared logger.
func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, _ := zap.NewDevelopment()
		logger = l.Sugar()
	})
	return logger
}
