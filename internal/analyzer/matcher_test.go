package analyzer

import (
	"strings"
	"testing"
)

func TestFindTermMatches(t *testing.T) {
	content := "Acme is hiring a VP of Sales. The team uses Salesforce daily. " +
		"Acme announced expansion into Europe! No mention of churn here."

	matches := FindTermMatches(content, []string{"hiring", "salesforce", "expansion", "migration"})

	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(matches), matches)
	}

	// Order follows the term list, not occurrence order
	if matches[0].Term != "hiring" || matches[1].Term != "salesforce" || matches[2].Term != "expansion" {
		t.Errorf("unexpected match order: %+v", matches)
	}

	if matches[0].Count != 1 {
		t.Errorf("expected count 1 for hiring, got %d", matches[0].Count)
	}

	if len(matches[0].Sentences) != 1 || !strings.Contains(matches[0].Sentences[0], "VP of Sales") {
		t.Errorf("expected surrounding sentence, got %v", matches[0].Sentences)
	}
}

func TestFindTermMatches_CaseInsensitive(t *testing.T) {
	matches := FindTermMatches("Funding ROUND closed", []string{"funding round"})
	if len(matches) != 1 || matches[0].Count != 1 {
		t.Fatalf("expected case-insensitive match, got %+v", matches)
	}
}

func TestFindTermMatches_Empty(t *testing.T) {
	if m := FindTermMatches("", []string{"x"}); m != nil {
		t.Errorf("expected nil for empty content, got %v", m)
	}
	if m := FindTermMatches("content", nil); m != nil {
		t.Errorf("expected nil for empty terms, got %v", m)
	}
}

func TestSplitIntoSentences(t *testing.T) {
	got := splitIntoSentences("One. Two! Three? Trailing")
	if len(got) != 4 {
		t.Fatalf("expected 4 sentences, got %d: %v", len(got), got)
	}
	if got[3] != "Trailing" {
		t.Errorf("expected trailing fragment, got %q", got[3])
	}
}

func BenchmarkFindTermMatches(b *testing.B) {
	var sb strings.Builder
	for sb.Len() < 10*1024 {
		sb.WriteString("Acme raised a funding round and is hiring sales engineers. ")
		sb.WriteString("The company uses HubSpot and plans expansion into new markets. ")
	}
	content := sb.String()
	terms := []string{"funding", "hiring", "hubspot", "expansion", "migration"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		FindTermMatches(content, terms)
	}
}
