package text

import (
	"strings"
	"unicode"
)

// Ellipsis is appended to text truncated by Wrap and Ellipsize.
const Ellipsis = "…"

// Wrap breaks s into lines no wider than maxWidth, breaking at spaces and
// falling back to character breaks for words wider than a line. Hard line
// breaks are respected. When maxLines > 0 and the text needs more lines,
// the last kept line is ellipsized.
//
// A non-positive maxWidth disables wrapping; the hard lines are returned as-is
// (still limited by maxLines).
func Wrap(s string, face *Face, maxWidth float64, maxLines int) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	paragraphs := strings.Split(s, "\n")

	lines := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		if maxWidth <= 0 || face == nil {
			lines = append(lines, para)
			continue
		}
		lines = append(lines, wrapParagraph(para, face, maxWidth)...)
	}

	if maxLines > 0 && len(lines) > maxLines {
		last := lines[maxLines-1] + Ellipsis
		lines = lines[:maxLines]
		if maxWidth > 0 && face != nil {
			last = Ellipsize(last, face, maxWidth)
		}
		lines[maxLines-1] = last
	}
	return lines
}

// wrapParagraph greedily fills lines word by word.
func wrapParagraph(para string, face *Face, maxWidth float64) []string {
	words := strings.FieldsFunc(para, unicode.IsSpace)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  string
	)
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if face.Advance(candidate) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		// The word alone may still overflow; split it by runes.
		for face.Advance(w) > maxWidth {
			head, tail := splitToWidth(w, face, maxWidth)
			lines = append(lines, head)
			w = tail
		}
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitToWidth returns the longest rune prefix of s that fits maxWidth
// (at least one rune) and the remainder.
func splitToWidth(s string, face *Face, maxWidth float64) (head, tail string) {
	runes := []rune(s)
	n := 1
	for n < len(runes) && face.Advance(string(runes[:n+1])) <= maxWidth {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

// Ellipsize shortens s to fit maxWidth, ending it with Ellipsis when
// characters had to be removed. Text that already fits is returned unchanged.
func Ellipsize(s string, face *Face, maxWidth float64) string {
	if face == nil || maxWidth <= 0 || face.Advance(s) <= maxWidth {
		return s
	}
	runes := []rune(strings.TrimSuffix(s, Ellipsis))
	for len(runes) > 0 {
		candidate := strings.TrimRightFunc(string(runes), unicode.IsSpace) + Ellipsis
		if face.Advance(candidate) <= maxWidth {
			return candidate
		}
		runes = runes[:len(runes)-1]
	}
	return Ellipsis
}
