// Package console renders story text to a terminal and reads the player's
// menu answers.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// ErrClosed is returned once the input stream has ended.
var ErrClosed = errors.New("console input closed")

// Console is a line-oriented terminal with an optional typewriter effect.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	delay time.Duration
}

// New creates a console over arbitrary streams. A zero delay prints lines
// at once.
func New(in io.Reader, out io.Writer, delay time.Duration) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		delay: delay,
	}
}

// NewTerminal creates a console on stdin/stdout. The typewriter effect is
// disabled when stdout is not a terminal.
func NewTerminal(delay time.Duration) *Console {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		delay = 0
	}
	return New(os.Stdin, os.Stdout, delay)
}

// Show prints each line, one character at a time when a delay is set.
func (c *Console) Show(lines ...string) {
	for _, line := range lines {
		c.typeLine(line)
	}
}

func (c *Console) typeLine(line string) {
	if c.delay <= 0 {
		fmt.Fprintln(c.out, line)
		return
	}
	for _, r := range line {
		fmt.Fprint(c.out, string(r))
		time.Sleep(c.delay)
	}
	fmt.Fprintln(c.out)
}

// Ask prints prompt without a trailing newline and returns the trimmed answer.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.readLine()
}

// Choose lists options as a numbered menu and returns the 1-based pick.
// Invalid answers re-prompt until a valid one arrives or input ends.
func (c *Console) Choose(options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("choose: no options")
	}
	c.Show("", "What do you do?")
	for i, opt := range options {
		c.Show(fmt.Sprintf("  [%d] %s", i+1, opt))
	}

	for {
		answer, err := c.Ask(fmt.Sprintf("\nEnter your choice (1-%d): ", len(options)))
		if err != nil {
			return 0, err
		}
		n, ok, msg := ParseChoice(answer, len(options))
		if ok {
			return n, nil
		}
		c.Show(msg)
	}
}

// ParseChoice validates a menu answer against a 1..max range. On failure it
// returns the message to show before re-prompting.
func ParseChoice(answer string, max int) (int, bool, string) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, false, "Please enter a valid number"
	}
	if n < 1 || n > max {
		return 0, false, fmt.Sprintf("Please enter a number between 1 and %d", max)
	}
	return n, true, ""
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
