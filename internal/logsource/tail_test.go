package logsource

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gst.log")
	var content strings.Builder
	for _, line := range lines {
		content.WriteString(line + "\n")
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func collect(src Source) []string {
	var out []string
	cur := src.IterateFrom(0)
	for {
		_, text, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, text)
	}
}

func TestTail(t *testing.T) {
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		expectedAll = append(expectedAll, fmt.Sprintf("Line %d", i))
	}
	logPath := writeLog(t, expectedAll)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(collect(got), tt.expected) {
				t.Errorf("Tail() = %v, want %v", collect(got), tt.expected)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", got.Len())
	}
}

func TestLoad(t *testing.T) {
	lines := []string{
		"0:00:00.000000000 12345 0x1 INFO GST_INIT gst.c:100:init: Initializing GStreamer",
		"\x1b[32m0:00:00.000100000\x1b[00m 12345 0x1 \x1b[33mDEBUG\x1b[00m GST_PLUGIN_LOADING plugin loaded",
		"",
	}
	path := writeLog(t, lines)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{
		lines[0],
		"0:00:00.000100000 12345 0x1 DEBUG GST_PLUGIN_LOADING plugin loaded",
		"",
	}
	if !reflect.DeepEqual(collect(got), want) {
		t.Fatalf("Load() = %q, want %q", collect(got), want)
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.log")); err == nil {
		t.Fatal("Load() error = nil, want error")
	}
}
