package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/klabast/wb-services/feiertag-kalender/internal/app"
)

// MinPasswordLength is the shortest password hash-password accepts
const MinPasswordLength = 12

// HashPassword handles the hash-password subcommand
func HashPassword(args []string) {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	overwrite := fs.Bool("overwrite", false, "Overwrite existing auth file without asking")
	insecureUnmask := fs.Bool("insecure-unmask-password", false, "Show password as plain text (INSECURE!)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: feiertag-kalender hash-password [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Creates the auth.secret file protecting edit mode (Argon2id).\n")
		fmt.Fprintf(os.Stderr, "Reads username and password twice from stdin when it is not a terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  AUTH_FILE    Path to auth file (default: auth.secret next to the binary)\n")
	}
	_ = fs.Parse(args)

	var read passwordReader = maskedPassword
	if *insecureUnmask || !term.IsTerminal(int(os.Stdin.Fd())) {
		if *insecureUnmask {
			fmt.Fprintf(os.Stderr, "⚠️  WARNING: Password will be visible on screen!\n")
		}
		read = plainPassword
	}

	in := bufio.NewReader(os.Stdin)
	username, password, err := readCredentials(in, os.Stdout, read)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := app.CreateAuthFile(username, password, *overwrite); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type passwordReader func(in *bufio.Reader, out io.Writer, prompt string) (string, error)

// readCredentials prompts for a username and a confirmed password
func readCredentials(in *bufio.Reader, out io.Writer, read passwordReader) (string, string, error) {
	fmt.Fprint(out, "Enter username: ")
	username, err := readLine(in)
	if err != nil {
		return "", "", fmt.Errorf("failed to read username: %w", err)
	}
	if username == "" {
		return "", "", errors.New("username cannot be empty")
	}
	if strings.Contains(username, ":") {
		return "", "", errors.New("username must not contain ':'")
	}

	password, err := read(in, out, "Enter password:   ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}
	if len(password) < MinPasswordLength {
		return "", "", fmt.Errorf("password must have at least %d characters", MinPasswordLength)
	}

	confirm, err := read(in, out, "Confirm password: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return "", "", errors.New("passwords do not match")
	}

	return username, password, nil
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func plainPassword(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	return readLine(in)
}

// maskedPassword echoes an asterisk per character. The terminal is in raw
// mode while reading, so Enter, Backspace and Ctrl+C are handled here.
func maskedPassword(_ *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// no raw mode, fall back to hidden input
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		return string(password), err
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	var password []byte
	reader := bufio.NewReader(os.Stdin)
	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprint(out, "\r\n")
			return string(password), err
		}

		switch char {
		case '\n', '\r':
			fmt.Fprint(out, "\r\n")
			return string(password), nil
		case 127, 8: // Backspace or Delete
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Fprint(out, "\b \b")
			}
		case 3: // Ctrl+C
			fmt.Fprint(out, "\r\n")
			return "", errors.New("aborted")
		default:
			if char >= 32 && char <= 126 {
				password = append(password, byte(char))
				fmt.Fprint(out, "*")
			}
		}
	}
}
