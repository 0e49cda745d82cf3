package trie

import (
	"fmt"
	"sort"
)

// node - A trie node with one child per rune
type node struct {
	children map[rune]*node
	isWord   bool
}

// newNode - Returns a pointer to a new node without children
func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie - A prefix tree over unicode words. Lookup cost is proportional to the word length and
// independent of the number of stored words, which makes it suited for prefix completion.
type Trie struct {
	root *node
	size int
}

// NewTrie - Returns a pointer to a new empty Trie instance
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert - Adds a word to the trie. The empty word is ignored.
// It returns true if the word was added, false if it was already present or empty.
func (T *Trie) Insert(word string) bool {
	if word == "" {
		return false
	}

	current := T.root
	for _, r := range word {
		child, ok := current.children[r]
		if !ok {
			child = newNode()
			current.children[r] = child
		}
		current = child
	}

	if current.isWord {
		return false
	}

	current.isWord = true
	T.size++

	return true
}

// Search - Returns true if the exact word is in the trie
func (T *Trie) Search(word string) bool {
	n := T.walk(word)
	return n != nil && n.isWord
}

// StartsWith - Returns true if at least one stored word begins with the given prefix
func (T *Trie) StartsWith(prefix string) bool {
	return T.walk(prefix) != nil
}

// WordsWithPrefix - Returns all stored words beginning with the given prefix in lexicographic order.
// An empty prefix returns every word in the trie.
func (T *Trie) WordsWithPrefix(prefix string) []string {
	words := make([]string, 0)

	n := T.walk(prefix)
	if n == nil {
		return words
	}

	T.collect(n, prefix, &words)
	sort.Strings(words)

	return words
}

// Delete - Removes a word from the trie, pruning nodes that no longer lead to any word.
// It returns true if the word was present, false otherwise.
func (T *Trie) Delete(word string) bool {
	n := T.walk(word)
	if n == nil || !n.isWord {
		return false
	}

	n.isWord = false
	T.size--
	T.prune(T.root, []rune(word), 0)

	return true
}

// Len - Returns the number of words in the trie
func (T *Trie) Len() int {
	return T.size
}

// IsEmpty - Returns true if the trie holds no words
func (T *Trie) IsEmpty() bool {
	return T.size == 0
}

// Clear - Removes all words from the trie
func (T *Trie) Clear() {
	T.root = newNode()
	T.size = 0
}

// String - Returns a string representation with all words in lexicographic order
func (T *Trie) String() string {
	return fmt.Sprintf("Trie(%v)", T.WordsWithPrefix(""))
}

// walk - Follows the given string from the root.
//
// It returns:
//   - n is the node the string ends at, or nil if the path does not exist
func (T *Trie) walk(s string) (n *node) {
	n = T.root
	for _, r := range s {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}

	return
}

// collect - Gathers all words below the given node into the result slice
func (T *Trie) collect(n *node, prefix string, result *[]string) {
	if n.isWord {
		*result = append(*result, prefix)
	}

	for r, child := range n.children {
		T.collect(child, prefix+string(r), result)
	}
}

// prune - Removes child links along the given word that no longer lead to any word.
//
// It returns:
//   - removable is true if the node at this depth can be dropped by its parent
func (T *Trie) prune(n *node, word []rune, depth int) (removable bool) {
	if depth < len(word) {
		child, ok := n.children[word[depth]]
		if ok && T.prune(child, word, depth+1) {
			delete(n.children, word[depth])
		}
	}

	removable = !n.isWord && len(n.children) == 0 && n != T.root

	return
}
