package voiceorder

import (
	"regexp"
	"strconv"
	"strings"
)

// numberWords maps spoken quantities to integers. Compound forms are NOT
// composed: "twenty one dosa" parses as quantity 20 with name "one dosa",
// because each word is evaluated on its own.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
}

// Phrases are separated by comma, semicolon, or a standalone "and"/"then".
var phraseSeparator = regexp.MustCompile(`(?i)[,;]|\s+and\s+|\s+then\s+`)

// parseQuantity reads a single word as a quantity. Returns 0 when the
// word is neither a positive integer literal nor a known number word.
func parseQuantity(word string) int {
	if n, err := strconv.Atoi(word); err == nil && n > 0 {
		return n
	}
	if n, ok := numberWords[strings.ToLower(word)]; ok {
		return n
	}
	return 0
}

// extractQuantity pulls a quantity out of a segment's words.
// Precedence: first word, then last word, then the first interior match
// (joining the words around it). Defaults to 1 when nothing qualifies.
func extractQuantity(words []string) (int, string) {
	if len(words) == 0 {
		return 1, ""
	}

	if q := parseQuantity(words[0]); q > 0 {
		return q, strings.Join(words[1:], " ")
	}

	if len(words) > 1 {
		last := len(words) - 1
		if q := parseQuantity(words[last]); q > 0 {
			return q, strings.Join(words[:last], " ")
		}

		for i := 1; i < last; i++ {
			if q := parseQuantity(words[i]); q > 0 {
				rest := make([]string, 0, len(words)-1)
				rest = append(rest, words[:i]...)
				rest = append(rest, words[i+1:]...)
				return q, strings.Join(rest, " ")
			}
		}
	}

	return 1, strings.Join(words, " ")
}

// Tokenize splits an utterance like "idli two, masala idli four and vada"
// into quantified item phrases. It never fails: malformed input degrades
// to best-effort phrases, and empty input yields an empty slice.
func Tokenize(utterance string) []ParsedPhrase {
	if strings.TrimSpace(utterance) == "" {
		return nil
	}

	parts := phraseSeparator.Split(utterance, -1)
	phrases := make([]ParsedPhrase, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quantity, remaining := extractQuantity(strings.Fields(part))
		name := strings.TrimSpace(remaining)
		if name == "" {
			// a bare quantity ("two") is not an orderable phrase
			continue
		}

		phrases = append(phrases, ParsedPhrase{
			RawText:  part,
			Quantity: quantity,
			Name:     name,
		})
	}

	return phrases
}
