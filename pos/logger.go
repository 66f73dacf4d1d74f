package pos

import "go.uber.org/zap"

// NewLogger builds the process logger. Debug selects the human-readable
// development encoder; otherwise the JSON production config is used.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
