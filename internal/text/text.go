package text

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SplitWord breaks word into fragments no wider than the given budgets.
// The first fragment holds at most firstBudget runes, every later fragment
// at most restBudget. firstBudget may be smaller than restBudget so the
// leading fragment can share a line with earlier words.
//
// The final fragment is emitted even when shorter than its budget, so
// joining the result always reproduces word exactly.
func SplitWord(word string, firstBudget, restBudget int) ([]string, error) {
	if firstBudget < 1 {
		return nil, fmt.Errorf("first budget %d: %w", firstBudget, ErrInvalidBudget)
	}
	if restBudget < 1 {
		return nil, fmt.Errorf("rest budget %d: %w", restBudget, ErrInvalidBudget)
	}

	var frags []string
	budget := firstBudget
	cur := make([]rune, 0, budget)
	for _, r := range word {
		if len(cur) >= budget {
			frags = append(frags, string(cur))
			cur = cur[:0]
			budget = restBudget
		}
		cur = append(cur, r)
	}
	frags = append(frags, string(cur))

	return frags, nil
}

// Reflow wraps paragraphs into lines of at most maxColumns runes. Each
// paragraph is first split on hard newlines, then tokenized on whitespace;
// runs of whitespace collapse to a single separating space. Words wider
// than maxColumns are split mid-word, and those fragments are the only
// lines allowed to fill the budget exactly from a partial word.
//
// Paragraphs never share a line. Empty paragraphs produce no lines.
func Reflow(paragraphs []string, maxColumns int) ([]string, error) {
	if maxColumns < 1 {
		return nil, fmt.Errorf("max columns %d: %w", maxColumns, ErrInvalidBudget)
	}

	var lines []string
	for _, paragraph := range paragraphs {
		for _, hard := range strings.Split(paragraph, "\n") {
			var err error
			lines, err = reflowParagraph(lines, hard, maxColumns)
			if err != nil {
				return nil, err
			}
		}
	}
	return lines, nil
}

func reflowParagraph(lines []string, paragraph string, maxColumns int) ([]string, error) {
	acc := ""
	for _, word := range strings.Fields(paragraph) {
		wordLen := utf8.RuneCountInString(word)
		accLen := utf8.RuneCountInString(acc)

		switch {
		case wordLen > maxColumns:
			first := maxColumns - (accLen + 1)
			if accLen > 0 && first < 1 {
				// No room for even one rune after the accumulator;
				// flush it and split against the full budget.
				lines = append(lines, acc)
				acc = ""
				accLen = 0
			}
			if accLen > 0 {
				frags, err := SplitWord(word, first, maxColumns)
				if err != nil {
					return nil, err
				}
				lines = append(lines, acc+" "+frags[0])
				lines = append(lines, frags[1:len(frags)-1]...)
				acc = frags[len(frags)-1]
			} else {
				frags, err := SplitWord(word, maxColumns, maxColumns)
				if err != nil {
					return nil, err
				}
				lines = append(lines, frags...)
				acc = ""
			}
		case accLen > 0 && accLen+1+wordLen > maxColumns:
			lines = append(lines, acc)
			acc = word
		case accLen > 0:
			acc = acc + " " + word
		default:
			acc = word
		}
	}
	if acc != "" {
		lines = append(lines, acc)
	}
	return lines, nil
}
