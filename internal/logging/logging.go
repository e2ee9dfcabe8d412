// Package logging hands out scoped leveled loggers for the command-line
// tools. Verbosity follows the PION_LOG_* environment variables.
package logging

import (
	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}
