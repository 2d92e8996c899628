package logger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Logger carries human-readable status messages to the operator.
type Logger interface {
	Info(message string)
	Success(message string)
	Warning(message string)
	Error(message string)
	Hint(message string)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
)

// ErrorText renders s in the error style.
func ErrorText(s string) string { return errorStyle.Render(s) }

// Console writes color-highlighted messages to a single stream.
type Console struct {
	Out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) Info(message string)    { fmt.Fprintln(c.Out, message) }
func (c *Console) Success(message string) { fmt.Fprintln(c.Out, successStyle.Render(message)) }
func (c *Console) Warning(message string) { fmt.Fprintln(c.Out, warningStyle.Render(message)) }
func (c *Console) Error(message string)   { fmt.Fprintln(c.Out, errorStyle.Render(message)) }
func (c *Console) Hint(message string)    { fmt.Fprintln(c.Out, hintStyle.Render(message)) }

// NewTrace opens a structured command-trace logger writing JSON lines to
// path. Used by --verbose to record every executed command.
func NewTrace(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
