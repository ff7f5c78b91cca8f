package freq

import (
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

func TestWordsTopOne(t *testing.T) {
	top := Words([]string{"gato", "perro", "gato"}, 1)

	if len(top) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(top))
	}
	if top[0].Label() != "gato" || top[0].Count != 2 {
		t.Errorf("Top entry = (%s, %d), want (gato, 2)", top[0].Label(), top[0].Count)
	}
}

func TestWordsSortedDescending(t *testing.T) {
	tokens := strings.Fields("a b c b c c d")
	top := Words(tokens, 10)

	for i := 1; i < len(top); i++ {
		if top[i].Count > top[i-1].Count {
			t.Errorf("Entries not sorted: %v", top)
		}
	}
	if top[0].Label() != "c" || top[0].Count != 3 {
		t.Errorf("Expected c=3 first, got %s=%d", top[0].Label(), top[0].Count)
	}
}

func TestWordsTiesKeepFirstSeenOrder(t *testing.T) {
	tokens := strings.Fields("zeta alfa beta alfa zeta beta")
	top := Words(tokens, 0)

	var labels []string
	for _, e := range top {
		labels = append(labels, e.Label())
	}
	if got := strings.Join(labels, ","); got != "zeta,alfa,beta" {
		t.Errorf("Tie order = %s, want zeta,alfa,beta", got)
	}
}

func TestWordsFewerThanK(t *testing.T) {
	top := Words([]string{"uno", "dos", "uno"}, 10)
	if len(top) != 2 {
		t.Errorf("Expected exactly 2 distinct entries, got %d", len(top))
	}
}

func TestWordsEmpty(t *testing.T) {
	if top := Words(nil, 10); len(top) != 0 {
		t.Errorf("Expected no entries, got %v", top)
	}
}

func TestNGrams(t *testing.T) {
	tokens := strings.Fields("a b a b a")
	top, err := NGrams(tokens, 2, 10)
	if err != nil {
		t.Fatalf("NGrams failed: %v", err)
	}

	if len(top) != 2 {
		t.Fatalf("Expected 2 distinct bigrams, got %d: %v", len(top), top)
	}
	if top[0].Label() != "a b" || top[0].Count != 2 {
		t.Errorf("Top bigram = (%s, %d), want (a b, 2)", top[0].Label(), top[0].Count)
	}
	if top[1].Label() != "b a" || top[1].Count != 2 {
		t.Errorf("Second bigram = (%s, %d), want (b a, 2)", top[1].Label(), top[1].Count)
	}
	if len(top[0].Tokens) != 2 {
		t.Errorf("Bigram should keep 2 tokens, got %v", top[0].Tokens)
	}
}

func TestNGramsTooFewTokens(t *testing.T) {
	top, err := NGrams([]string{"uno", "dos", "tres"}, 4, 10)
	if err != nil {
		t.Fatalf("Short input should not error: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected empty result, got %v", top)
	}
}

func TestNGramsExactLength(t *testing.T) {
	top, err := NGrams([]string{"uno", "dos", "tres", "cuatro"}, 4, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Label() != "uno dos tres cuatro" {
		t.Errorf("Expected one 4-gram, got %v", top)
	}
}

func TestNGramsInvalidSize(t *testing.T) {
	_, err := NGrams([]string{"a"}, 0, 10)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	c.Add("a", "b")
	c.Add("a", "b")
	c.Add("ab")

	if c.Len() != 2 {
		t.Errorf("Expected 2 distinct items, got %d", c.Len())
	}
	if c.Total() != 3 {
		t.Errorf("Expected 3 occurrences, got %d", c.Total())
	}
	if c.Count("a", "b") != 2 {
		t.Errorf("Expected count 2 for (a b), got %d", c.Count("a", "b"))
	}
	if c.Count("ab") != 1 {
		t.Error("(ab) must not collide with (a b)")
	}
}

func TestCounterMostCommonDoesNotAlias(t *testing.T) {
	tokens := []string{"x", "y"}
	c := NewCounter()
	c.Add(tokens...)
	tokens[0] = "mutated"

	if got := c.MostCommon(1)[0].Label(); got != "x y" {
		t.Errorf("Counter should copy tokens, got %q", got)
	}
}

func TestCounterMostCommonResultsAreIndependent(t *testing.T) {
	c := NewCounter()
	c.Add("x", "y")

	first := c.MostCommon(0)
	first[0].Tokens[0] = "mutated"

	if got := c.MostCommon(0)[0].Label(); got != "x y" {
		t.Errorf("Mutating a result changed the counter, got %q", got)
	}
}
