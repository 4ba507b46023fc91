// Package trie is the prefix tree behind the dictionary: insertion, exact lookup and
// enumeration of stored words in ascending order.
package trie

import (
	"errors"
	"sort"
)

// SkipWalk can be returned from a WalkFunc to stop a walk early without an error.
var SkipWalk = errors.New("skip the rest of the walk")

// WalkFunc is called for every stored word during Walk and WalkPrefix.
type WalkFunc func(word string) error

// edge links a node to one child under a single key byte.
type edge struct {
	key   byte
	child *node
}

// node children are kept sorted by key, so a walk never has to sort.
type node struct {
	children []edge
	end      bool
}

// child returns the child under key and its position in n.children.
// When missing, i is where it would be inserted.
func (n *node) child(key byte) (*node, int) {
	i := sort.Search(len(n.children), func(j int) bool {
		return n.children[j].key >= key
	})
	if i < len(n.children) && n.children[i].key == key {
		return n.children[i].child, i
	}
	return nil, i
}

func (n *node) addChild(key byte, at int) *node {
	c := &node{}
	n.children = append(n.children, edge{})
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = edge{key: key, child: c}
	return c
}

// Trie stores words keyed by their bytes. It is not safe for concurrent use;
// callers that share one across goroutines must guard it themselves.
type Trie struct {
	root  *node
	count int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Insert adds word to the trie. Inserting a word twice is a no-op.
// The empty string marks the root itself.
func (t *Trie) Insert(word string) {
	n := t.root
	for i := 0; i < len(word); i++ {
		next, at := n.child(word[i])
		if next == nil {
			next = n.addChild(word[i], at)
		}
		n = next
	}
	if !n.end {
		n.end = true
		t.count++
	}
}

// Search reports whether word was inserted as a complete word.
func (t *Trie) Search(word string) bool {
	n := t.find(word)
	return n != nil && n.end
}

// HasPrefix reports whether any stored word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.find(prefix) != nil
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	return t.count
}

func (t *Trie) find(word string) *node {
	n := t.root
	for i := 0; i < len(word); i++ {
		if n = n.childOrNil(word[i]); n == nil {
			return nil
		}
	}
	return n
}

func (n *node) childOrNil(key byte) *node {
	c, _ := n.child(key)
	return c
}

// Walk calls fn for every stored word in ascending lexicographic order.
// It stops at the first error returned by fn; SkipWalk stops without error.
func (t *Trie) Walk(fn WalkFunc) error {
	return walk(t.root, nil, fn)
}

// WalkPrefix is Walk restricted to words starting with prefix, prefix included.
func (t *Trie) WalkPrefix(prefix string, fn WalkFunc) error {
	n := t.find(prefix)
	if n == nil {
		return nil
	}
	return walk(n, []byte(prefix), fn)
}

// Words returns every stored word, sorted ascending.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.count)
	t.Walk(func(word string) error {
		words = append(words, word)
		return nil
	})
	return words
}

// frame is one pending node on the walk stack. depth is the length of the
// path leading to the node's parent.
type frame struct {
	n     *node
	key   byte
	depth int
}

// walk is a pre-order depth-first traversal driven by an explicit stack.
// Children are pushed in reverse so the smallest key is visited first, which
// makes the visit order the lexicographic order of the stored words.
func walk(start *node, prefix []byte, fn WalkFunc) error {
	path := append([]byte(nil), prefix...)
	if start.end {
		if err := fn(string(path)); err != nil {
			return skipped(err)
		}
	}

	stack := pushChildren(nil, start, len(path))
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path = append(path[:f.depth], f.key)
		if f.n.end {
			if err := fn(string(path)); err != nil {
				return skipped(err)
			}
		}
		stack = pushChildren(stack, f.n, len(path))
	}
	return nil
}

func pushChildren(stack []frame, n *node, depth int) []frame {
	for i := len(n.children) - 1; i >= 0; i-- {
		e := n.children[i]
		stack = append(stack, frame{n: e.child, key: e.key, depth: depth})
	}
	return stack
}

func skipped(err error) error {
	if errors.Is(err, SkipWalk) {
		return nil
	}
	return err
}
