package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrSourceRead = errors.New("cannot read program source")

func readSource(path string, stdin *bufio.Reader) (string, error) {
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrSourceRead, err)
		}
		return string(content), nil
	}
	return readUntilBlankLine(stdin)
}

// readUntilBlankLine accumulates lines until the text ends with an empty line,
// leaving the rest of r for the program.
func readUntilBlankLine(r *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		line, err := r.ReadString('\n')
		b.WriteString(line)
		if str := b.String(); strings.HasSuffix(str, "\n\n") {
			return strings.TrimSuffix(str, "\n\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return b.String(), nil
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrSourceRead, err)
		}
	}
}
