// Package stats implements the word-frequency and hourly-activity analyzers.
package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/PopFlamingo/TelegramStats/model"
)

var ErrLimitOutOfRange = errors.New("limit is out of range for the result list")

// WordCount is one entry of a word-frequency report.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CountWords tokenizes each message's text content and counts occurrences of
// every lowercased token. Tokens are split on single ASCII spaces with no
// collapsing, so runs of spaces (and empty text) produce empty tokens that
// are counted under the empty word.
func CountWords(messages []model.Message) map[string]int {
	counts := make(map[string]int)
	for _, msg := range messages {
		for _, token := range strings.Split(msg.TextContent(), " ") {
			counts[strings.ToLower(token)]++
		}
	}
	return counts
}

// SortWordCounts materializes a count map as a deterministically ordered
// list. A full alphabetical sort runs first so that the stable re-sort by
// count leaves equal-count groups in ascending word order. reverse orders
// counts ascending instead of descending.
func SortWordCounts(counts map[string]int, reverse bool) []WordCount {
	pairs := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		pairs = append(pairs, WordCount{Word: word, Count: count})
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Word < pairs[j].Word
	})
	sort.SliceStable(pairs, func(i, j int) bool {
		if reverse {
			return pairs[i].Count < pairs[j].Count
		}
		return pairs[i].Count > pairs[j].Count
	})

	return pairs
}

// LimitWordCounts truncates a sorted report to its first n entries. A limit
// outside the bounds of the list is an error, never a silent clamp.
func LimitWordCounts(pairs []WordCount, n int) ([]WordCount, error) {
	if n < 0 || n > len(pairs) {
		return nil, fmt.Errorf("%w: %d of %d entries", ErrLimitOutOfRange, n, len(pairs))
	}
	return pairs[:n], nil
}
