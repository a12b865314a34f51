package corpus

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// tokenEstimateFactor approximates how many tokens a word expands to for
// typical English prose.
const tokenEstimateFactor = 1.3

// Stats summarizes a generated corpus. EstimatedTokens is the word count
// scaled by tokenEstimateFactor and rounded; for an exact count use
// CountTokens.
type Stats struct {
	TotalParts      int `json:"total_parts"`
	Characters      int `json:"characters"`
	Words           int `json:"words"`
	EstimatedTokens int `json:"estimated_tokens"`
}

// CalculateStats computes corpus statistics from the accumulated text
// blocks and the joined corpus text.
func CalculateStats(parts []string, corpus string) Stats {
	words := len(strings.Fields(corpus))
	return Stats{
		TotalParts:      len(parts),
		Characters:      utf8.RuneCountInString(corpus),
		Words:           words,
		EstimatedTokens: int(math.Round(float64(words) * tokenEstimateFactor)),
	}
}

// CountTokens returns the exact token count of the corpus under the given
// tiktoken encoding, e.g. "o200k_base".
func CountTokens(corpus string, encoding string) (int, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(corpus, nil, nil)), nil
}
