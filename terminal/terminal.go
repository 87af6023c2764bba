// SPDX-License-Identifier: GPL-3.0-or-later
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type readResult struct {
	line string
	err  error
}

// Terminal reads one line per prompt from in and renders to out. A prompt
// waiting for input returns the context error once ctx is done.
type Terminal struct {
	ctx context.Context
	in  *bufio.Reader
	out io.Writer

	start sync.Once
	lines chan readResult
	// sticky once input ended or ctx was cancelled
	err error
}

func NewTerminal(ctx context.Context, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		ctx:   ctx,
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan readResult),
	}
}

// Prompt writes prompt and returns the next input line without its line
// ending. A final line without newline is returned before io.EOF.
func (t *Terminal) Prompt(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)

	if t.err == nil {
		t.start.Do(func() { go t.read() })

		select {
		case <-t.ctx.Done():
			t.err = t.ctx.Err()
		case r := <-t.lines:
			t.err = r.err
			if len(r.line) > 0 && (r.err == nil || r.err == io.EOF) {
				return strings.TrimRight(r.line, "\r\n"), nil
			}
		}
	}

	// keep the shell prompt on its own line
	fmt.Fprintln(t.out)
	return "", t.err
}

func (t *Terminal) Printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

// read feeds lines to Prompt until the input fails. A read blocked on a
// terminal cannot be interrupted; the goroutine ends with the process.
func (t *Terminal) read() {
	for {
		line, err := t.in.ReadString('\n')
		t.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}
