/*
 * Line - line-based prompts for non-interactive input.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line asks questions one line at a time. It is used when the input is not
// a terminal, for instance when answers are piped in.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a new line prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed line. The last line may lack the
// newline; end of input without any text is ErrCancelled.
func (l Line) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose prints a numbered list and accepts either the number or the entry
// itself. Invalid answers are asked again.
func (l Line) Choose(message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errNoChoices
	}
	fmt.Fprintln(l.out, message)
	for i, c := range choices {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, c)
	}
	for {
		fmt.Fprint(l.out, "> ")
		answer, err := l.readLine()
		if err != nil {
			return "", err
		}
		if choice, ok := matchChoice(answer, choices); ok {
			return choice, nil
		}
		fmt.Fprintf(l.out, "Invalid choice %q\n", answer)
	}
}

// Confirm asks a yes/no question until it gets a valid answer.
func (l Line) Confirm(message string) (bool, error) {
	for {
		fmt.Fprintf(l.out, "%s [y/n] ", message)
		answer, err := l.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(l.out, "Please answer yes or no\n")
	}
}

// matchChoice resolves an answer given as a 1-based index or as the entry.
func matchChoice(answer string, choices []string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		return "", false
	}
	for _, c := range choices {
		if c == answer {
			return c, true
		}
	}
	return "", false
}
