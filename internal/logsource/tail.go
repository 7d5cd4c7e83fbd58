package logsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
)

const (
	scanBufInitial = 64 * 1024
	scanBufMax     = 1024 * 1024
)

// Load reads every line of the file at path.
func Load(path string) (*Lines, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := readAll(file)
	if err != nil {
		return nil, err
	}
	return NewLines(lines), nil
}

// Tail returns at most maxLines from the end of the file at path. A
// non-positive maxLines reads the whole file.
func Tail(path string, maxLines int) (*Lines, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewLines(nil), nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	if maxLines <= 0 {
		lines, err := readAll(file)
		if err != nil {
			return nil, err
		}
		return NewLines(lines), nil
	}

	ring := make([]string, maxLines)
	scanner := newScanner(file)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = cleanLine(scanner.Text())
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return NewLines(lines), nil
}

func readAll(r io.Reader) ([]string, error) {
	var lines []string
	scanner := newScanner(r)
	for scanner.Scan() {
		lines = append(lines, cleanLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufInitial), scanBufMax)
	return scanner
}

// cleanLine drops colour escapes so offsets reported by matchers line up
// with what is rendered.
func cleanLine(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == 0x1b {
			return ansi.Strip(line)
		}
	}
	return line
}
