package checker

import "strings"

// neighborSpan is how many words are taken from each side of the insertion point.
const neighborSpan = 2

// InsertionPoint returns the index of word in the sorted slice words, or the
// smallest index whose element is greater than word when it is absent.
// It returns len(words) when word sorts after every element.
func InsertionPoint(words []string, word string) int {
	start, end := 0, len(words)-1
	for start <= end {
		mid := start + (end-start)/2
		switch strings.Compare(words[mid], word) {
		case 0:
			return mid
		case -1:
			start = mid + 1
		default:
			end = mid - 1
		}
	}
	return start
}

// Neighbors returns up to span words before idx followed by up to span words
// from idx onward. Both sides are clipped to the bounds of words.
// The result never shares memory with words.
func Neighbors(words []string, idx, span int) []string {
	lo := max(idx-span, 0)
	hi := min(idx+span, len(words))
	if lo >= hi {
		return nil
	}
	out := make([]string, hi-lo)
	copy(out, words[lo:hi])
	return out
}
