package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinels understood by the collection prompts.
const (
	// SentinelDone terminates list and block collection.
	SentinelDone = "done"

	// SentinelSkip leaves a block prompt unanswered.
	SentinelSkip = "skip"
)

// ErrInvalidChoice is returned when a menu answer is not one of the offered
// numbers. It is a hard error: the session does not re-prompt.
var ErrInvalidChoice = errors.New("session: invalid menu choice")

// Prompter asks questions on out and reads answers line by line from in.
// There is no timeout: each call blocks until a full line arrives.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps an input/output pair, typically stdin and stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf writes formatted output to the prompter's writer.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the prompter's writer.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Ask prints a label and returns one trimmed line.
func (p *Prompter) Ask(label string) (string, error) {
	p.Printf("%s ", promptStyle.Render(label+":"))
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskDefault prints a label with the current value; a blank answer keeps it.
func (p *Prompter) AskDefault(label, current string) (string, error) {
	if current == "" {
		return p.Ask(label)
	}
	p.Printf("%s ", promptStyle.Render(fmt.Sprintf("%s [%s]:", label, current)))
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. Only y/yes count as yes.
func (p *Prompter) Confirm(label string) (bool, error) {
	p.Printf("%s ", promptStyle.Render(label+" [y/N]:"))
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Choose prints a numbered menu and returns the 1-based selection. Any
// answer outside the menu wraps ErrInvalidChoice.
func (p *Prompter) Choose(title string, options []string) (int, error) {
	p.Println(titleStyle.Render(title))
	for i, option := range options {
		p.Printf("  %d) %s\n", i+1, option)
	}
	p.Printf("%s ", promptStyle.Render(fmt.Sprintf("Choose [1-%d]:", len(options))))
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, strings.TrimSpace(line))
	}
	return n, nil
}

// ReadList collects trimmed lines until a blank line or the done sentinel.
// Empty lines never enter the result.
func (p *Prompter) ReadList(label string) ([]string, error) {
	p.Println(promptStyle.Render(fmt.Sprintf("%s (one per line, blank line or %q to finish):", label, SentinelDone)))
	var items []string
	for {
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.EqualFold(trimmed, SentinelDone) {
			return items, nil
		}
		items = append(items, trimmed)
	}
}

// ReadBlock collects verbatim lines until the done sentinel, preserving
// interior blank lines and indentation. A lone skip sentinel on the first
// line reports skipped=true with no content consumed beyond it.
func (p *Prompter) ReadBlock(label string) (body string, skipped bool, err error) {
	p.Println(promptStyle.Render(fmt.Sprintf("%s (%q on its own line to finish, %q to leave unchanged):", label, SentinelDone, SentinelSkip)))
	var lines []string
	first := true
	for {
		line, err := p.readLine()
		if err != nil {
			return "", false, err
		}
		trimmed := strings.TrimSpace(line)
		if first && strings.EqualFold(trimmed, SentinelSkip) {
			return "", true, nil
		}
		first = false
		if strings.EqualFold(trimmed, SentinelDone) {
			return strings.Join(lines, "\n"), false, nil
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("session: read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
