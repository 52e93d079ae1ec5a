package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTest(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, 0), &out
}

func TestShowPrintsLines(t *testing.T) {
	c, out := newTest("")
	c.Show("first", "", "second")
	assert.Equal(t, "first\n\nsecond\n", out.String())
}

func TestShowWithDelayPrintsSameText(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, time.Microsecond)
	c.Show("abc")
	assert.Equal(t, "abc\n", out.String())
}

func TestChooseRepromptsUntilValid(t *testing.T) {
	c, out := newTest("abc\n0\n4\n 2 \n")

	n, err := c.Choose([]string{"Left", "Middle", "Right"})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	text := out.String()
	assert.Contains(t, text, "  [1] Left\n")
	assert.Contains(t, text, "  [3] Right\n")
	assert.Equal(t, 1, strings.Count(text, "Please enter a valid number\n"))
	assert.Equal(t, 2, strings.Count(text, "Please enter a number between 1 and 3\n"))
	assert.Equal(t, 4, strings.Count(text, "Enter your choice (1-3): "))
}

func TestChooseReturnsClosedOnEOF(t *testing.T) {
	c, _ := newTest("x\n")
	_, err := c.Choose([]string{"a", "b"})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestChooseRejectsEmptyMenu(t *testing.T) {
	c, _ := newTest("1\n")
	_, err := c.Choose(nil)
	assert.Error(t, err)
}

func TestAskTrimsAndAcceptsFinalLineWithoutNewline(t *testing.T) {
	c, out := newTest("  Ada  \nBob")

	name, err := c.Ask("Enter your name: ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	name, err = c.Ask("again: ")
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)

	_, err = c.Ask("more: ")
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, "Enter your name: again: more: ", out.String())
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in  string
		n   int
		ok  bool
		msg string
	}{
		{"1", 1, true, ""},
		{"9", 9, true, ""},
		{"10", 0, false, "Please enter a number between 1 and 9"},
		{"-1", 0, false, "Please enter a number between 1 and 9"},
		{"", 0, false, "Please enter a valid number"},
		{"two", 0, false, "Please enter a valid number"},
	}
	for _, tc := range tests {
		n, ok, msg := ParseChoice(tc.in, 9)
		assert.Equal(t, tc.n, n, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.msg, msg, tc.in)
	}
}

func TestParseControl(t *testing.T) {
	tests := map[string]Control{
		"c":        ControlContinue,
		"s":        ControlSave,
		"S":        ControlSave,
		"q":        ControlQuit,
		"quit":     ControlQuit,
		"v":        ControlStats,
		"view":     ControlStats,
		"save":     ControlSave,
		"":         ControlContinue,
		"x":        ControlContinue,
		"123":      ControlContinue,
		" q":       ControlQuit,
		"continue": ControlContinue,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseControl(in), "%q", in)
	}
}

func TestParseMainMenu(t *testing.T) {
	tests := map[string]MenuChoice{
		"1":     MenuNewGame,
		"2":     MenuLoadGame,
		"3":     MenuQuit,
		"":      MenuNewGame,
		"4":     MenuNewGame,
		"load":  MenuLoadGame,
		"Lod":   MenuLoadGame,
		"loaf":  MenuLoadGame,
		"quit":  MenuQuit,
		"quti":  MenuNewGame,
		"exit":  MenuQuit,
		"exti":  MenuNewGame,
		"qit":   MenuQuit,
		"new":   MenuNewGame,
		"start": MenuNewGame,
		"hello": MenuNewGame,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseMainMenu(in), "%q", in)
	}
}

func TestAffirmative(t *testing.T) {
	assert.True(t, Affirmative("y"))
	assert.True(t, Affirmative("Y"))
	assert.False(t, Affirmative("yes"))
	assert.False(t, Affirmative(""))
	assert.False(t, Affirmative("n"))
}
