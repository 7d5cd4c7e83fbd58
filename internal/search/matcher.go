package search

import (
	"strings"
	"unicode/utf8"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

const (
	MatchModeExact = "exact"
	MatchModeFuzzy = "fuzzy"
)

// Range is a half-open byte range [Start, End) within a line.
type Range struct {
	Start int
	End   int
}

// Matcher reports where a query occurs in a line. An empty result means the
// line does not match. Matchers return at most one range per line; callers
// render at most one highlight per line.
type Matcher func(line string) []Range

// NewMatcher returns the matcher for mode. Unknown modes fall back to exact
// substring matching.
func NewMatcher(mode string, text string) Matcher {
	switch mode {
	case MatchModeFuzzy:
		return FuzzyMatcher(text)
	default:
		return SubstringMatcher(text)
	}
}

// SubstringMatcher matches lines containing text, case-sensitively. Only the
// first occurrence is reported.
func SubstringMatcher(text string) Matcher {
	n := len(text)
	return func(line string) []Range {
		if n == 0 {
			return nil
		}
		pos := strings.Index(line, text)
		if pos < 0 {
			return nil
		}
		return []Range{{Start: pos, End: pos + n}}
	}
}

// FuzzyMatcher matches lines with the fzf v2 algorithm, case-insensitively.
// The reported range spans the first to last matched character.
func FuzzyMatcher(text string) Matcher {
	pattern := []rune(strings.ToLower(text))
	slab := util.MakeSlab(64, 4096)
	return func(line string) []Range {
		if len(pattern) == 0 {
			return nil
		}
		chars := util.ToChars([]byte(strings.ToLower(line)))
		result, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, slab)
		if result.Score <= 0 {
			return nil
		}
		return []Range{{
			Start: runeOffset(line, result.Start),
			End:   runeOffset(line, result.End),
		}}
	}
}

// runeOffset converts a character index into a byte offset in s.
func runeOffset(s string, chars int) int {
	if chars <= 0 {
		return 0
	}
	offset := 0
	for i := 0; i < chars && offset < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset
}
