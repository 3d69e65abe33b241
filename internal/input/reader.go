// Package input reads newline-separated lists: domains piped on stdin and
// custom subdomain files.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Read reads lines from r, trims whitespace, and returns non-empty lines.
// Blank lines and lines that are only whitespace are dropped.
func Read(r io.Reader) ([]string, error) {
	return read(r, false)
}

// ReadList is like Read but additionally drops comment lines starting with '#'.
func ReadList(r io.Reader) ([]string, error) {
	return read(r, true)
}

func read(r io.Reader, skipComments bool) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || (skipComments && strings.HasPrefix(line, "#")) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
