package logging

import (
	"go.uber.org/zap"
)

// New builds the process logger. Development mode switches to the console
// encoder with debug level enabled; production logs JSON at info level.
// The physics tick path never logs — loggers live at the loading and
// driver boundaries only.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
