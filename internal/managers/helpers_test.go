package managers

import "go.uber.org/zap"

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
