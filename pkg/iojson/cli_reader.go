package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrNoInput is returned by Read when no file was given and stdin is a
// terminal.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); use -f or pipe JSON input")

// FileReader decodes a JSON document named by a --file flag. The value "-"
// reads stdin.
type FileReader[T any] struct {
	fileFlagValue string
	stdin         io.Reader
	isTerminal    func() bool
}

// Flag returns the --file flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to a JSON file (- reads stdin)",
		Destination: &fr.fileFlagValue,
	}
}

// Set reports whether the --file flag was given.
func (fr *FileReader[T]) Set() bool {
	return fr.fileFlagValue != ""
}

// Read decodes the input into a T.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	var reader io.Reader
	switch fr.fileFlagValue {
	case "", "-":
		if fr.stdinIsTerminal() {
			return input, ErrNoInput
		}
		reader = fr.stdinReader()
	default:
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

func (fr *FileReader[T]) stdinReader() io.Reader {
	if fr.stdin != nil {
		return fr.stdin
	}
	return os.Stdin
}

func (fr *FileReader[T]) stdinIsTerminal() bool {
	if fr.isTerminal != nil {
		return fr.isTerminal()
	}
	if fr.stdin != nil {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
