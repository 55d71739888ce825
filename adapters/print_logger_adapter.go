package adapters

import (
	"log"
	"os"
)

// PrintLoggerAdapter writes level-filtered messages through a standard
// library *log.Logger.
type PrintLoggerAdapter struct {
	level  LogLevel
	logger *log.Logger
}

// NewPrintLoggerAdapter creates a logger writing to stderr at the given level
func NewPrintLoggerAdapter(level LogLevel) *PrintLoggerAdapter {
	return NewPrintLoggerAdapterTo(log.New(os.Stderr, "", log.LstdFlags), level)
}

// NewPrintLoggerAdapterTo creates a logger writing through logger.
func NewPrintLoggerAdapterTo(logger *log.Logger, level LogLevel) *PrintLoggerAdapter {
	return &PrintLoggerAdapter{level: level, logger: logger}
}

func (p *PrintLoggerAdapter) printf(level LogLevel, message string, args []any) {
	if level.rank() < p.level.rank() {
		return
	}
	p.logger.Printf("["+string(level)+"] [Guard] "+message, args...)
}

func (p *PrintLoggerAdapter) Debug(message string, args ...any) {
	p.printf(LogLevelDebug, message, args)
}

func (p *PrintLoggerAdapter) Info(message string, args ...any) {
	p.printf(LogLevelInfo, message, args)
}

func (p *PrintLoggerAdapter) Warn(message string, args ...any) {
	p.printf(LogLevelWarn, message, args)
}

func (p *PrintLoggerAdapter) Error(message string, args ...any) {
	p.printf(LogLevelError, message, args)
}
