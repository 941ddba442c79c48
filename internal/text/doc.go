// Package text implements greedy line reflow with mid-word splitting.
//
// The package fits arbitrary text into a fixed-width character grid:
//
//   - [SplitWord]: breaks a single over-long word into budget-sized fragments
//   - [Reflow]: wraps paragraphs into display lines, splitting words that
//     exceed the column budget across lines
//
// Widths are measured in runes, not display columns. Combining marks and
// wide CJK glyphs will therefore not line up on a real terminal grid; the
// package targets single-cell glyph text (ascii art, latin prose).
//
// # Round trip
//
// No characters are ever dropped, duplicated or reordered: joining the
// fragments of [SplitWord] reproduces the word, and the words across the
// lines of [Reflow] reproduce the input word sequence.
package text
