package adapters

import "go.uber.org/zap"

// ZapLoggerAdapter forwards messages to a zap logger. Level filtering is
// left to the zap core.
type ZapLoggerAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapLoggerAdapter wraps logger, naming it "guard".
func NewZapLoggerAdapter(logger *zap.Logger) *ZapLoggerAdapter {
	return &ZapLoggerAdapter{logger: logger.Named("guard").Sugar()}
}

func (z *ZapLoggerAdapter) Debug(message string, args ...any) {
	z.logger.Debugf(message, args...)
}

func (z *ZapLoggerAdapter) Info(message string, args ...any) {
	z.logger.Infof(message, args...)
}

func (z *ZapLoggerAdapter) Warn(message string, args ...any) {
	z.logger.Warnf(message, args...)
}

func (z *ZapLoggerAdapter) Error(message string, args ...any) {
	z.logger.Errorf(message, args...)
}
