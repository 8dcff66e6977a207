// README: zap production logger used across the service.
package infra

import "go.uber.org/zap"

func NewLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}
