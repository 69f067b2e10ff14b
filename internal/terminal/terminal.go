package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive is returned when a prompt needs a terminal on stdin.
var ErrNotInteractive = errors.New("stdin is not a terminal")

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Confirm asks a yes/no question on out and reads the answer from in.
// Only "y" and "yes" (any case) confirm. The read is abandoned when ctx
// is done.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		ch <- answer{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-ch:
		if a.err != nil {
			if errors.Is(a.err, io.EOF) {
				return false, nil
			}
			return false, a.err
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}

// ConfirmTerminal is Confirm restricted to a terminal on in. It fails
// with ErrNotInteractive otherwise so scripts never block on a prompt.
func ConfirmTerminal(ctx context.Context, in io.Reader, out io.Writer, prompt string) (bool, error) {
	f, ok := in.(*os.File)
	if !ok || !IsInteractive(f) {
		return false, ErrNotInteractive
	}
	return Confirm(ctx, in, out, prompt)
}
