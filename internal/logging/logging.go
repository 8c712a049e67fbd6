package logging

import (
	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a leveled logger for the given scope. Levels are controlled
// with the PION_LOG_TRACE, PION_LOG_DEBUG, PION_LOG_INFO, PION_LOG_WARN and
// PION_LOG_ERROR environment variables, e.g. PION_LOG_DEBUG=ov534/transfers.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}
