package analyzer

import (
	"strings"
	"unicode"
)

// TermMatch represents occurrences of a search term within a block of text,
// typically concatenated search snippets for one company.
type TermMatch struct {
	Term      string   `json:"term"`
	Count     int      `json:"count"`
	Sentences []string `json:"sentences"`
}

// FindTermMatches scans content for each term (case-insensitive) and returns
// one TermMatch per term that occurs at least once, in the order the terms
// were given. For each occurrence the surrounding sentence is captured so
// adapters can surface it as a human-readable signal.
func FindTermMatches(content string, terms []string) []TermMatch {
	if len(content) == 0 || len(terms) == 0 {
		return nil
	}

	results := make([]TermMatch, 0, len(terms))

	// Lowercase the content and split sentences once, not per term.
	lowerContent := strings.ToLower(content)
	sentences := splitIntoSentences(content)
	lowerSentences := make([]string, len(sentences))
	for i, s := range sentences {
		lowerSentences[i] = strings.ToLower(s)
	}

	for _, term := range terms {
		lowerTerm := strings.ToLower(term)
		count := strings.Count(lowerContent, lowerTerm)
		if count == 0 {
			continue
		}

		var matched []string
		for i, ls := range lowerSentences {
			if strings.Contains(ls, lowerTerm) {
				matched = append(matched, sentences[i])
			}
		}

		results = append(results, TermMatch{
			Term:      term,
			Count:     count,
			Sentences: matched,
		})
	}
	return results
}

// splitIntoSentences naively splits text into sentences using '.', '!' or '?'
// as delimiters while preserving the delimiter at the end of each sentence.
func splitIntoSentences(text string) []string {
	if len(text) == 0 {
		return nil
	}

	// Estimate sentence count: roughly 1 sentence per 50 chars average
	estimated := len(text) / 50
	if estimated < 1 {
		estimated = 1
	}

	sentences := make([]string, 0, estimated)
	start := 0

	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			// Include the delimiter
			end := i + 1
			// Include following whitespace
			for end < len(text) && unicode.IsSpace(rune(text[end])) {
				end++
			}
			sentences = append(sentences, strings.TrimSpace(text[start:end]))
			start = end
		}
	}

	// Capture any trailing text
	if start < len(text) {
		sentences = append(sentences, strings.TrimSpace(text[start:]))
	}

	return sentences
}
