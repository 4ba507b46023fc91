package checker

import (
	"sync"

	"github.com/bastiangx/spellserve/pkg/trie"
	"github.com/charmbracelet/log"
)

// WordSource supplies the words a Checker is built from, one per dictionary entry.
// An unreadable source yields an empty slice, never an error.
type WordSource interface {
	Words() []string
}

// Option configures a Checker.
type Option func(*Checker)

// WithCache keeps up to size NearestWords results. Zero disables caching.
func WithCache(size int) Option {
	return func(c *Checker) {
		if size > 0 {
			c.cache = NewCache(size)
		}
	}
}

// Checker answers membership and nearest-word queries over a dictionary trie.
// It is safe for concurrent use.
type Checker struct {
	trie  *trie.Trie
	words []string
	added []string
	cache *Cache
	mu    sync.RWMutex
}

// New builds a Checker from words. A nil or empty slice gives an empty dictionary.
func New(words []string, opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	c.words = words
	c.trie = buildTrie(words, nil)
	log.Debugf("Dictionary built: %d entries, %d distinct words", len(words), c.trie.Len())
	return c
}

// FromSource builds a Checker from the words src supplies.
func FromSource(src WordSource, opts ...Option) *Checker {
	return New(src.Words(), opts...)
}

func buildTrie(words, added []string) *trie.Trie {
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	for _, w := range added {
		t.Insert(w)
	}
	return t
}

// IsInDictionary reports whether word is a stored word.
func (c *Checker) IsInDictionary(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.Search(word)
}

// AddWord inserts word into the dictionary.
func (c *Checker) AddWord(word string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.trie.Search(word) {
		return
	}
	c.trie.Insert(word)
	c.added = append(c.added, word)
	if c.cache != nil {
		c.cache.Invalidate(word)
	}
}

// NearestWords suggests up to four stored words around an unknown word: the two
// sorting just before it and the two sorting just after it, in ascending order.
// It returns nothing for a word that is already in the dictionary.
func (c *Checker) NearestWords(word string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.trie.Search(word) {
		return nil
	}
	if c.cache != nil {
		if cached, ok := c.cache.Get(word); ok {
			return cached
		}
	}

	words := c.trie.Words()
	idx := InsertionPoint(words, word)
	neighbors := Neighbors(words, idx, neighborSpan)

	if c.cache != nil {
		c.cache.Put(word, neighbors)
	}
	return neighbors
}

// Complete returns stored words that extend prefix, in ascending order.
// The prefix itself is never included. limit <= 0 means no limit.
func (c *Checker) Complete(prefix string, limit int) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []string
	err := c.trie.WalkPrefix(prefix, func(word string) error {
		if word == prefix {
			return nil
		}
		out = append(out, word)
		if limit > 0 && len(out) >= limit {
			return trie.SkipWalk
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error walking completions for '%s': %v", prefix, err)
	}
	return out
}

// SortedWords returns every stored word in ascending order.
func (c *Checker) SortedWords() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.Words()
}

// Len returns the number of distinct stored words.
func (c *Checker) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.Len()
}

// Reload replaces the source words and rebuilds the dictionary.
// Words added with AddWord survive the reload.
func (c *Checker) Reload(words []string) {
	t := buildTrie(words, c.addedWords())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.words = words
	c.trie = t
	// words added while t was being built
	for _, w := range c.added {
		c.trie.Insert(w)
	}
	if c.cache != nil {
		c.cache.Clear()
	}
	log.Debugf("Dictionary reloaded: %d distinct words", c.trie.Len())
}

func (c *Checker) addedWords() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.added...)
}

// Stats returns counters about the dictionary and its cache.
func (c *Checker) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := map[string]int{
		"totalWords":  c.trie.Len(),
		"sourceWords": len(c.words),
		"addedWords":  len(c.added),
	}
	if c.cache != nil {
		for k, v := range c.cache.Stats() {
			stats[k] = v
		}
		stats["cache"] = 1
	} else {
		stats["cache"] = 0
	}
	return stats
}
