package checker

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var animals = []string{"hen", "cat", "fox", "dog"}

type sliceSource []string

func (s sliceSource) Words() []string { return s }

func TestRoundTrip(t *testing.T) {
	c := New(nil)
	for _, w := range []string{"spell", "spelling", "check", "a"} {
		c.AddWord(w)
		assert.True(t, c.IsInDictionary(w))
	}

	for _, p := range []string{"spel", "spellin", "chec", "s", ""} {
		assert.False(t, c.IsInDictionary(p), "prefix %q should not be a word", p)
	}
}

func TestIdempotentAdd(t *testing.T) {
	c := New(animals)
	before := c.SortedWords()
	c.AddWord("cat")
	c.AddWord("cat")
	assert.Equal(t, before, c.SortedWords())
	assert.Equal(t, 0, c.Stats()["addedWords"])

	dup := New([]string{"cat", "cat", "dog"})
	assert.Equal(t, []string{"cat", "dog"}, dup.SortedWords())
}

func TestSortedWordsOrdering(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	words := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		n := 1 + r.Intn(8)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(byte('a' + r.Intn(6)))
		}
		words = append(words, b.String())
	}

	got := New(words).SortedWords()
	require.True(t, sort.StringsAreSorted(got))
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1], got[i], "duplicate at %d", i)
	}
}

func TestNearestWords(t *testing.T) {
	c := New(animals)

	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"elk", []string{"cat", "dog", "fox", "hen"}, "insertion point in the middle"},
		{"aardvark", []string{"cat", "dog"}, "sorts before every word"},
		{"zebra", []string{"fox", "hen"}, "sorts after every word"},
		{"cow", []string{"cat", "dog", "fox"}, "one word before"},
		{"goat", []string{"dog", "fox", "hen"}, "one word after"},
		{"", []string{"cat", "dog"}, "empty query"},
		{"ca", []string{"cat", "dog"}, "prefix of a stored word"},
		{"cats", []string{"cat", "dog", "fox"}, "extension of a stored word"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.NearestWords(tc.input))
		})
	}
}

func TestNearestWordsSelfMembership(t *testing.T) {
	c := New(animals)
	for _, w := range animals {
		assert.Empty(t, c.NearestWords(w))
	}
}

func TestEmptyDictionary(t *testing.T) {
	for _, c := range []*Checker{New(nil), FromSource(sliceSource{}), New([]string{}, WithCache(8))} {
		for _, w := range []string{"", "a", "anything"} {
			assert.False(t, c.IsInDictionary(w))
			assert.Empty(t, c.NearestWords(w))
		}
		assert.Empty(t, c.Complete("a", 0))
		assert.Equal(t, 0, c.Len())
	}
}

func TestMutationVisibility(t *testing.T) {
	c := New(animals)
	require.Equal(t, []string{"cat", "dog", "fox", "hen"}, c.NearestWords("elk"))

	c.AddWord("elk")
	assert.True(t, c.IsInDictionary("elk"))
	assert.Empty(t, c.NearestWords("elk"))
	assert.Equal(t, []string{"dog", "elk", "fox", "hen"}, c.NearestWords("emu"))
}

func TestNearestWordsDoesNotAlias(t *testing.T) {
	c := New(animals)
	got := c.NearestWords("elk")
	got[0] = "mutated"
	assert.Equal(t, []string{"cat", "dog", "fox", "hen"}, c.NearestWords("elk"))
}

func TestComplete(t *testing.T) {
	c := New([]string{"app", "apple", "applet", "apply", "apt", "bat"})

	assert.Equal(t, []string{"apple", "applet", "apply"}, c.Complete("app", 0))
	assert.Equal(t, []string{"apple", "applet"}, c.Complete("app", 2))
	assert.Equal(t, []string{"app", "apple", "applet", "apply", "apt"}, c.Complete("a", -1))
	assert.Empty(t, c.Complete("c", 10))
}

func TestFromSource(t *testing.T) {
	c := FromSource(sliceSource(animals))
	assert.True(t, c.IsInDictionary("fox"))
	assert.Equal(t, 4, c.Len())
}

func TestReloadKeepsAddedWords(t *testing.T) {
	c := New(animals, WithCache(16))
	c.AddWord("elk")
	_ = c.NearestWords("owl")

	c.Reload([]string{"ant", "bee"})
	assert.False(t, c.IsInDictionary("cat"))
	assert.True(t, c.IsInDictionary("elk"))
	assert.Equal(t, []string{"ant", "bee", "elk"}, c.SortedWords())
	assert.Equal(t, []string{"bee", "elk"}, c.NearestWords("owl"))

	stats := c.Stats()
	assert.Equal(t, 3, stats["totalWords"])
	assert.Equal(t, 2, stats["sourceWords"])
	assert.Equal(t, 1, stats["addedWords"])
}

// A cached checker must answer exactly like an uncached one while words are added.
func TestCacheMatchesUncached(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	randomWord := func() string {
		n := 1 + r.Intn(4)
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('a' + r.Intn(5))
		}
		return string(b)
	}

	seed := make([]string, 40)
	for i := range seed {
		seed[i] = randomWord()
	}
	plain := New(seed)
	cached := New(seed, WithCache(32))

	for i := 0; i < 2000; i++ {
		w := randomWord()
		if r.Intn(5) == 0 {
			plain.AddWord(w)
			cached.AddWord(w)
			continue
		}
		require.Equal(t, plain.NearestWords(w), cached.NearestWords(w), "query %q at step %d", w, i)
	}

	stats := cached.Stats()
	assert.Equal(t, 1, stats["cache"])
	assert.Positive(t, stats["cacheHits"])
	assert.LessOrEqual(t, stats["cacheWords"], 32)
}

func TestConcurrentQueries(t *testing.T) {
	c := New(animals, WithCache(8))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				w := fmt.Sprintf("w%d_%d", i, j)
				if j%50 == 0 {
					c.AddWord(w)
				}
				c.NearestWords(w)
				c.IsInDictionary(w)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4+8*4, c.Len())
}
