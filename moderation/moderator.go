// Package moderation censors blacklisted words in user-supplied counter
// labels before they are stored or indexed.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// leet maps the usual digit and symbol substitutions back onto the letters
// they stand in for, so "b4dger" and "badger" collapse to the same pattern.
var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '!': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

type Moderator struct {
	machine     *goahocorasick.Machine
	replacement rune
}

// NewModerator compiles the word list into an Aho-Corasick automaton over
// the folded alphabet. One automaton serves every Censor call.
func NewModerator(censoredWords []string, replacement rune) (Moderator, error) {
	patterns := make([][]rune, len(censoredWords))
	for i, word := range censoredWords {
		patterns[i], _ = fold([]rune(word))
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{machine: machine, replacement: replacement}, nil
}

// Censor masks every dictionary hit in label with the replacement rune.
// Matching runs on the folded text; the positions slice carries each folded
// rune back to its place in the original, so spacing and punctuation
// survive untouched.
func (m *Moderator) Censor(label string) string {
	runes := []rune(label)
	folded, positions := fold(runes)
	if len(folded) == 0 {
		return label
	}

	for _, hit := range m.machine.MultiPatternSearch(folded, false) {
		start := hit.Pos
		end := start + len(hit.Word)
		if start < 0 || end > len(positions) {
			continue
		}
		for i := positions[start]; i <= positions[end-1]; i++ {
			runes[i] = m.replacement
		}
	}
	return string(runes)
}

// fold lowercases, resolves leet speak and drops separators. The second
// return value maps each folded rune back to its index in the input.
func fold(input []rune) ([]rune, []int) {
	folded := make([]rune, 0, len(input))
	positions := make([]int, 0, len(input))
	for i, r := range input {
		if letter, ok := leet[r]; ok {
			r = letter
		} else if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		positions = append(positions, i)
	}
	return folded, positions
}
