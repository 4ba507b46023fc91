// Package checker is the spell checking core: a dictionary index built on the trie
// package that answers membership, nearest-word and completion queries.
package checker

// IChecker defines the interface the CLI and the server query.
type IChecker interface {
	// IsInDictionary reports exact membership
	IsInDictionary(word string) bool

	// AddWord inserts a word at runtime
	AddWord(word string)

	// NearestWords returns up to 4 sorted neighbors of an unknown word
	NearestWords(word string) []string

	// Complete returns words extending prefix, limited to limit results
	Complete(prefix string, limit int) []string

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}

var _ IChecker = (*Checker)(nil)
