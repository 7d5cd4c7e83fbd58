package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstringMatcher(t *testing.T) {
	tests := []struct {
		name  string
		query string
		line  string
		want  []Range
	}{
		{"no match", "alpha", "beta gamma", nil},
		{"first occurrence only", "ab", "xxabyyab", []Range{{Start: 2, End: 4}}},
		{"case sensitive", "Gst", "gstreamer", nil},
		{"whole line", "abc", "abc", []Range{{Start: 0, End: 3}}},
		{"empty query never matches", "", "anything", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubstringMatcher(tt.query)(tt.line)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuzzyMatcher(t *testing.T) {
	m := FuzzyMatcher("abc")

	got := m("xxabcxx")
	require.Len(t, got, 1)
	assert.Equal(t, Range{Start: 2, End: 5}, got[0])

	assert.Empty(t, m("zzz"))
	assert.Empty(t, FuzzyMatcher("")("abc"))
}

func TestFuzzyMatcher_CaseInsensitiveAndByteOffsets(t *testing.T) {
	line := "ééABC tail"
	got := FuzzyMatcher("abc")(line)
	require.Len(t, got, 1)
	assert.Equal(t, "ABC", line[got[0].Start:got[0].End])
}

func TestNewMatcher_UnknownModeIsExact(t *testing.T) {
	m := NewMatcher("regex", "a.c")
	assert.Empty(t, m("abc"))
	assert.NotEmpty(t, m("xa.cx"))

	assert.NotEmpty(t, NewMatcher(MatchModeFuzzy, "ac")("abc"))
}
