// Package prompt implements the interactive terminal collaborators the
// core depends on only through plain string in/out: reading a line of
// input and reading a passphrase without echoing it back. Neither
// function touches anything in internal/kcrypto, internal/compile, or
// internal/restore directly - they exist so cmd/kin and cmd/kindecrypt
// don't each reimplement the same stdin dance.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// IsTerminal reports whether stdin is attached to an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// Line prompts on stderr and reads one line from stdin.
func Line(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Passphrase prompts on stderr and reads a passphrase from stdin without
// echoing it back, falling back to a plain line read when stdin isn't a
// terminal (e.g. piped input in scripts or tests).
func Passphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !IsTerminal() {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(pw), nil
}
