package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"wallet-client/internal/secret"
	"wallet-client/pkg/errno"
)

// readHidden reads a line with terminal echo disabled. When stdin is not a
// terminal (tests, pipes) it falls back to a plain line read.
func readHidden(label string) (string, error) {
	fmt.Print(label)
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret captures a 6-digit PIN, re-prompting on malformed input.
// The returned entry authorizes exactly one submission.
func promptSecret() (*secret.Entry, error) {
	for attempt := 0; attempt < 3; attempt++ {
		code, err := readHidden("Enter your 6-digit PIN: ")
		if err != nil {
			return nil, err
		}

		entry, err := secret.New(code)
		if err == nil {
			return entry, nil
		}
		if errors.Is(err, errno.ErrIncompleteSecret) {
			fmt.Println(err.Error())
			continue
		}
		return nil, err
	}
	return nil, errno.ErrIncompleteSecret
}

// confirmYes asks a yes/no question on stdin.
func confirmYes(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
