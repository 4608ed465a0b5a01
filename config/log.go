package config

import (
	"fmt"
	"io"
	"log"
)

// ANSI colours for log output.
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"

	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = LogColorReset
)

// Level tags that open a log message.
const (
	InfoTag  = LogInfoColor + "[INFO]" + LogColorReset
	ErrorTag = LogErrorColor + "[ERROR]" + LogColorReset
)

// NewLogger returns a logger whose lines start with name in colour.
func NewLogger(name, color string, w io.Writer) *log.Logger {
	return log.New(w, fmt.Sprintf("%s[%s]%s ", color, name, ColorReset), log.LstdFlags)
}
