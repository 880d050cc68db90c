package logging

import "github.com/arloliu/grouper/types"

// NopLogger implements a no-op logger.
//
// All messages are discarded. This is the default logger for assigners when
// none is configured.
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger.
//
// Returns:
//   - *NopLogger: A new no-op logger instance
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (l *NopLogger) Debug(_ string, _ ...any) {
	// No-op
}

// Info discards the message.
func (l *NopLogger) Info(_ string, _ ...any) {
	// No-op
}

// Warn discards the message.
func (l *NopLogger) Warn(_ string, _ ...any) {
	// No-op
}

// Error discards the message.
func (l *NopLogger) Error(_ string, _ ...any) {
	// No-op
}

// Fatal discards the message without exiting.
func (l *NopLogger) Fatal(_ string, _ ...any) {
	// No-op
}
