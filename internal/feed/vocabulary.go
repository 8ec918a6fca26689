// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTerms is the built-in agricultural vocabulary. The order defines the
// embedding dimensions and must not change between releases.
var DefaultTerms = []string{
	// crops
	"rice", "paddy", "wheat", "maize", "corn", "cotton", "vegetable", "tomato", "chilli", "onion",
	// water
	"irrigation", "drip", "sprinkler", "canal", "flood", "watering",
	// soil
	"fertilizer", "urea", "npk", "compost", "organic", "manure",
	// crop health
	"pest", "disease", "fungus", "bacterial", "insect", "worm",
	// crop cycle
	"harvest", "yield", "flowering", "sowing", "seedling", "transplant",
	// weather
	"rain", "drought", "humidity", "temperature", "heat",
}

// ErrInvalidVocabulary is returned when a term list cannot form a vocabulary.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// Vocabulary is an immutable ordered set of lowercase terms.
// Position in the set is the dimension index shared by every Vector.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// NewVocabulary builds a vocabulary from an ordered list of terms.
// Terms must be non-empty, unique and consist of the letters a-z only, since
// tokenization never produces anything else.
func NewVocabulary(terms []string) (*Vocabulary, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: no terms", ErrInvalidVocabulary)
	}

	v := &Vocabulary{
		terms: make([]string, len(terms)),
		index: make(map[string]int, len(terms)),
	}

	for i, term := range terms {
		if !isToken(term) {
			return nil, fmt.Errorf("%w: term %q must match [a-z]+", ErrInvalidVocabulary, term)
		}
		if _, dup := v.index[term]; dup {
			return nil, fmt.Errorf("%w: duplicate term %q", ErrInvalidVocabulary, term)
		}
		v.terms[i] = term
		v.index[term] = i
	}

	return v, nil
}

// DefaultVocabulary returns the vocabulary built from DefaultTerms.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(DefaultTerms)
	if err != nil {
		panic(err) // DefaultTerms is a compile-time constant list
	}
	return v
}

// Len returns the number of dimensions.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns a copy of the ordered terms.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Index returns the dimension of term, or -1 if term is not in the vocabulary.
func (v *Vocabulary) Index(term string) int {
	if i, ok := v.index[term]; ok {
		return i
	}
	return -1
}

// Zero returns an all-zero vector of vocabulary length.
func (v *Vocabulary) Zero() Vector {
	return make(Vector, len(v.terms))
}

// Embed maps text to a term-frequency vector over the vocabulary.
//
// The text is lower-cased with full Unicode case mapping, then split on
// every run of characters outside a-z. Each token that exactly matches a term increments
// that term's dimension by one. Unknown tokens are dropped.
func (v *Vocabulary) Embed(text string) Vector {
	vec := v.Zero()
	if text == "" {
		return vec
	}

	for _, token := range Tokenize(text) {
		if i, ok := v.index[token]; ok {
			vec[i]++
		}
	}
	return vec
}

// Tokenize splits text into lowercase alphabetic tokens. Letters that stay
// outside a-z after lower-casing (fullwidth forms, ligatures, combining
// marks) act as separators.
func Tokenize(text string) []string {
	// A Caser carries state and is not safe for concurrent use.
	text = cases.Lower(language.Und).String(text)

	return strings.FieldsFunc(text, func(r rune) bool {
		return r < 'a' || r > 'z'
	})
}

// isToken reports whether s is a non-empty run of a-z.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
