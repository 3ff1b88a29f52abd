// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line-oriented field input from the terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a [Prompter] over the given reader and writer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints a label and returns the trimmed input line. An empty line
// yields the empty string — required-ness is the validator's concern, not
// the prompt's. ok is false once the input stream has ended, so callers can
// stop prompting instead of spinning on a closed stdin.
func (prompter *Prompter) Ask(label string) (value string, ok bool) {
	fmt.Fprintf(prompter.out, "  %s: ", label)
	line, err := prompter.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// AskOptional prints a label marked as optional.
func (prompter *Prompter) AskOptional(label string) (value string, ok bool) {
	return prompter.Ask(label + " (optional)")
}
