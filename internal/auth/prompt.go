package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter collects sign-in input from the user.
type Prompter interface {
	Email() (string, error)
	Password() (string, error)
}

// TerminalPrompter prompts on stdin/stdout. The password is read with
// local echo disabled when stdin is a terminal.
type TerminalPrompter struct {
	in       *os.File
	out      io.Writer
	reader   *bufio.Reader
	bannered bool
}

// NewTerminalPrompter returns a prompter bound to the process stdin and
// stdout.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{
		in:     os.Stdin,
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
	}
}

func (p *TerminalPrompter) banner() {
	if p.bannered {
		return
	}
	p.bannered = true
	fmt.Fprintln(p.out, "Please enter authentication credentials for Warframe Market")
}

// Email prompts for and reads the account email.
func (p *TerminalPrompter) Email() (string, error) {
	p.banner()
	fmt.Fprint(p.out, "Email: ")
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Password prompts for and reads the account password.
func (p *TerminalPrompter) Password() (string, error) {
	p.banner()
	fmt.Fprint(p.out, "Password: ")
	if fd := int(p.in.Fd()); term.IsTerminal(fd) {
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
	// Not a terminal (piped input, tests): fall back to a plain line read.
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// WithEmail returns a Prompter that answers the email prompt with a fixed
// value and delegates the password prompt to next. It backs the config
// option that pre-fills the account email.
func WithEmail(email string, next Prompter) Prompter {
	return &fixedEmailPrompter{email: email, next: next}
}

type fixedEmailPrompter struct {
	email string
	next  Prompter
}

func (p *fixedEmailPrompter) Email() (string, error) {
	return p.email, nil
}

func (p *fixedEmailPrompter) Password() (string, error) {
	return p.next.Password()
}
