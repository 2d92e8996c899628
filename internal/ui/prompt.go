package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Answer is a validated yes/no response.
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)

// Confirm asks a yes/no question and reads one line from r, blocking with no
// timeout. An empty line takes def. Case-insensitive y/yes and n/no are
// accepted; any other input is an error naming the invalid value — ambiguous
// answers are never coerced to the default.
func Confirm(question string, def Answer, r io.Reader, out io.Writer) (Answer, error) {
	suffix := "[Y/n]"
	if def == AnswerNo {
		suffix = "[y/N]"
	}
	fmt.Fprintf(out, "%s %s ", promptStyle.Render(question), suffix)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return def, fmt.Errorf("failed to read answer: %w", err)
	}

	switch answer := strings.ToLower(strings.TrimSpace(line)); answer {
	case "":
		return def, nil
	case "y", "yes":
		return AnswerYes, nil
	case "n", "no":
		return AnswerNo, nil
	default:
		return def, fmt.Errorf("invalid answer %q: expected y, yes, n, or no", answer)
	}
}
