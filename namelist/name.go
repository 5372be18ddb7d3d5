package namelist

import (
	"strings"

	"github.com/jschaf/bibname/model"
)

// ParseName decomposes one person string into a NameParts record. In strict
// mode, malformed input (a trailing comma, more than two depth-0 commas, or
// unbalanced braces) fails with a *model.InvalidNameError naming the
// offending input and reason; in non-strict mode the same malformations are
// repaired per the table in the package's test suite and a best-effort
// NameParts is always returned. An s made only of whitespace and tildes
// returns the zero NameParts in both modes, never an error.
func ParseName(s string, strict bool) (model.NameParts, error) {
	if strings.Trim(s, " \t\n~") == "" {
		return model.NameParts{}, nil
	}
	effectiveEnd := len(s)
	for {
		positions := depth0Commas(s[:effectiveEnd])
		if len(positions) == 0 {
			break
		}
		last := positions[len(positions)-1]
		suffix := s[last+1 : effectiveEnd]
		if strings.Trim(suffix, " \t\n~") != "" {
			break
		}
		if strict {
			return model.NameParts{}, &model.InvalidNameError{Name: s, Reason: model.ReasonTrailingComma}
		}
		effectiveEnd = last
	}
	effectiveS := s[:effectiveEnd]

	segments, hadExcessClose, leftoverOpen := scanSegments(effectiveS)
	if strict {
		switch {
		case hadExcessClose:
			return model.NameParts{}, &model.InvalidNameError{Name: s, Reason: model.ReasonUnmatchedCloseBrace}
		case leftoverOpen:
			return model.NameParts{}, &model.InvalidNameError{Name: s, Reason: model.ReasonUnterminatedBrace}
		case len(segments) >= 4:
			return model.NameParts{}, &model.InvalidNameError{Name: s, Reason: model.ReasonTooManyCommas}
		}
	}

	switch {
	case len(segments) <= 1:
		var toks []string
		if len(segments) == 1 {
			toks = segments[0]
		}
		return assignFirstVonLast(toks), nil
	case len(segments) == 2:
		von, last := assignVonLast(segments[0])
		return model.NameParts{Von: von, Last: last, First: cloneTokens(segments[1])}, nil
	default: // 3 segments, or non-strict "too many commas" (4+)
		von, last := assignVonLast(segments[0])
		jr := cloneTokens(segments[1])
		var first []string
		for _, seg := range segments[2:] {
			first = append(first, seg...)
		}
		return model.NameParts{Von: von, Last: last, Jr: jr, First: first}, nil
	}
}

func cloneTokens(toks []string) []string {
	if len(toks) == 0 {
		return nil
	}
	out := make([]string, len(toks))
	copy(out, toks)
	return out
}

// assignFirstVonLast applies the First-von-Last mode assignment rule to the
// single segment of a 0-comma name.
func assignFirstVonLast(tokens []string) model.NameParts {
	n := len(tokens)
	if n == 0 {
		return model.NameParts{}
	}
	if n == 1 {
		return model.NameParts{Last: cloneTokens(tokens)}
	}

	firstLower, lastLower := -1, -1
	for i, t := range tokens {
		if tokenCase(t) == 'L' {
			if firstLower == -1 {
				firstLower = i
			}
			lastLower = i
		}
	}
	if lastLower == -1 {
		return model.NameParts{First: cloneTokens(tokens[:n-1]), Last: cloneTokens(tokens[n-1:])}
	}

	vonEnd := lastLower
	if n-2 < vonEnd {
		vonEnd = n - 2
	}
	if firstLower > vonEnd {
		return model.NameParts{First: cloneTokens(tokens[:n-1]), Last: cloneTokens(tokens[n-1:])}
	}
	return model.NameParts{
		First: cloneTokens(tokens[:firstLower]),
		Von:   cloneTokens(tokens[firstLower : vonEnd+1]),
		Last:  cloneTokens(tokens[vonEnd+1:]),
	}
}

// assignVonLast applies the Last-von-First/Last-von-Jr-First segment-A rule:
// von spans from the start of a through the last lowercase token before a's
// final token, and last takes the rest. The final token always goes to
// last, so von is empty when no earlier token is lowercase.
func assignVonLast(a []string) (von, last []string) {
	n := len(a)
	if n == 0 {
		return nil, nil
	}
	lastLower := -1
	for i := 0; i < n-1; i++ {
		if tokenCase(a[i]) == 'L' {
			lastLower = i
		}
	}
	if lastLower == -1 {
		return nil, cloneTokens(a)
	}
	return cloneTokens(a[:lastLower+1]), cloneTokens(a[lastLower+1:])
}

// depth0Commas returns the byte offsets of every comma in s that occurs at
// brace depth 0, outside any escape span.
func depth0Commas(s string) []int {
	var out []int
	depth := 0
	n := len(s)
	for i := 0; i < n; {
		switch c := s[i]; {
		case c == '{':
			depth++
			i++
		case c == '}':
			if depth > 0 {
				depth--
			}
			i++
		case c == '\\':
			i = escapeSpanEnd(s, i)
		case c == ',' && depth == 0:
			out = append(out, i)
			i++
		default:
			i++
		}
	}
	return out
}

// scanSegments tokenizes s into depth-0-comma-delimited segments of tokens.
// A token's characters are always a contiguous span of s, but malformed
// input is repaired in place as it is built: a '}' seen at depth 0 widens
// the token with a leading '{' rather than going negative, and brace depth
// left open at end of input is closed with trailing '}' on whatever token
// was still open. hadExcessClose and leftoverOpen report whether either
// repair fired, for strict mode to reject instead of repairing.
func scanSegments(s string) (segments [][]string, hadExcessClose, leftoverOpen bool) {
	n := len(s)
	depth := 0
	tokenStart := -1
	excessClose := 0
	var tokens []string

	flushToken := func(end int) {
		if tokenStart == -1 {
			return
		}
		raw := s[tokenStart:end]
		if excessClose > 0 {
			raw = strings.Repeat("{", excessClose) + raw
			hadExcessClose = true
		}
		tokens = append(tokens, raw)
		tokenStart = -1
		excessClose = 0
	}
	flushSegment := func() {
		segments = append(segments, tokens)
		tokens = nil
	}

	i := 0
	for i < n {
		c := s[i]
		switch {
		case isWS(c) && depth == 0:
			flushToken(i)
			i++
		case c == ',' && depth == 0:
			flushToken(i)
			flushSegment()
			i++
		case c == '{':
			if tokenStart == -1 {
				tokenStart = i
			}
			depth++
			i++
		case c == '}':
			if tokenStart == -1 {
				tokenStart = i
			}
			if depth == 0 {
				excessClose++
			} else {
				depth--
			}
			i++
		case c == '\\':
			if tokenStart == -1 {
				tokenStart = i
			}
			if isEscapedTilde(s, i) {
				flushToken(i + 1)
				i += 2
			} else {
				i = escapeSpanEnd(s, i)
			}
		default:
			if tokenStart == -1 {
				tokenStart = i
			}
			i++
		}
	}

	if tokenStart != -1 {
		raw := s[tokenStart:n]
		if excessClose > 0 {
			raw = strings.Repeat("{", excessClose) + raw
			hadExcessClose = true
		}
		if depth > 0 {
			raw = raw + strings.Repeat("}", depth)
			leftoverOpen = true
		}
		tokens = append(tokens, raw)
	}
	flushSegment()
	return segments, hadExcessClose, leftoverOpen
}
