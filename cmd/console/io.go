package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// stdinConfirmer implements ports.Confirmer with a y/N prompt on the
// terminal. Anything other than y/yes declines.
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// stderrNotifier implements ports.Notifier on standard error, keeping stdout
// for command output.
type stderrNotifier struct{}

func (stderrNotifier) Info(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func (stderrNotifier) Error(msg string) {
	fmt.Fprintln(os.Stderr, "Error:", msg)
}
