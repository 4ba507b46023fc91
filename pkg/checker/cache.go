package checker

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// cacheEntry is a cached NearestWords result. lowOpen/highOpen mark a side of
// the window that had fewer than neighborSpan words, so any new word on that
// side would land inside it.
type cacheEntry struct {
	words    []string
	lowOpen  bool
	highOpen bool
}

// covers reports whether adding word could change this result.
func (e *cacheEntry) covers(word string) bool {
	if len(e.words) == 0 {
		return true
	}
	above := e.lowOpen || word > e.words[0]
	below := e.highOpen || word < e.words[len(e.words)-1]
	return above && below
}

// Cache keeps recent NearestWords results keyed by the queried word.
// It evicts the least recently used entry once maxWords is reached.
type Cache struct {
	entries     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int
	misses      int
	maxWords    int
	mu          sync.Mutex
}

// NewCache creates a cache holding at most maxWords results.
func NewCache(maxWords int) *Cache {
	return &Cache{
		entries:    patricia.NewTrie(),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
	}
}

// Get returns a copy of the cached result for word.
func (c *Cache) Get(word string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.entries.Get(patricia.Prefix(word))
	if item == nil {
		c.misses++
		return nil, false
	}
	c.hits++
	c.markAccessed(word)

	entry := item.(*cacheEntry)
	return append([]string(nil), entry.words...), true
}

// Put stores the neighbors computed for word.
func (c *Cache) Put(word string, neighbors []string) {
	if word == "" || c.maxWords <= 0 {
		return
	}

	before := 0
	for _, n := range neighbors {
		if n < word {
			before++
		}
	}
	entry := &cacheEntry{
		words:    append([]string(nil), neighbors...),
		lowOpen:  before < neighborSpan,
		highOpen: len(neighbors)-before < neighborSpan,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.accessTime[word]; !exists && len(c.accessTime) >= c.maxWords {
		c.evictLRU()
	}
	c.entries.Set(patricia.Prefix(word), entry)
	c.markAccessed(word)
}

// Invalidate drops every entry whose result changes once word is in the dictionary.
func (c *Cache) Invalidate(word string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var stale []patricia.Prefix
	err := c.entries.Visit(func(p patricia.Prefix, item patricia.Item) error {
		if string(p) == word || item.(*cacheEntry).covers(word) {
			stale = append(stale, append(patricia.Prefix(nil), p...))
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error scanning nearest-word cache: %v", err)
	}

	for _, p := range stale {
		c.entries.Delete(p)
		delete(c.accessTime, string(p))
	}
	if len(stale) > 0 {
		log.Debugf("Invalidated %d cached results for '%s'", len(stale), word)
	}
}

// Clear empties the cache but keeps its counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = patricia.NewTrie()
	c.accessTime = make(map[string]int64, c.maxWords)
}

// Stats reports cache size and hit counters.
func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cacheWords":  len(c.accessTime),
		"maxCache":    c.maxWords,
		"cacheHits":   c.hits,
		"cacheMisses": c.misses,
	}
}

func (c *Cache) markAccessed(word string) {
	c.accessCount++
	c.accessTime[word] = c.accessCount
}

func (c *Cache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = math.MaxInt64

	for word, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestWord = word
		}
	}

	if oldestWord != "" {
		c.entries.Delete(patricia.Prefix(oldestWord))
		delete(c.accessTime, oldestWord)
		log.Debugf("Evicted '%s' from nearest-word cache", oldestWord)
	}
}
