package hunspell

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBKTreeInsertAndQueryExact(t *testing.T) {
	tree := NewBKTree()
	for _, w := range []string{"book", "books", "cake", "boo", "cape", "cart"} {
		tree.Insert(w)
	}
	matches := tree.Query("book", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "book", matches[0].Word)
}

func TestBKTreeQueryRadius(t *testing.T) {
	tree := NewBKTree()
	for _, w := range []string{"book", "books", "boo", "cake", "cart"} {
		tree.Insert(w)
	}
	matches := tree.Query("book", 1)
	var words []string
	for _, m := range matches {
		words = append(words, m.Word)
	}
	sort.Strings(words)
	assert.Equal(t, []string{"boo", "book", "books"}, words)
}

func TestBKTreeInsertIdempotent(t *testing.T) {
	tree := NewBKTree()
	tree.Insert("same")
	tree.Insert("same")
	matches := tree.Query("same", 0)
	assert.Len(t, matches, 1)
}

func TestBKTreeEdgeInvariant(t *testing.T) {
	words := []string{"book", "back", "books", "boo", "cake", "cart", "care", "bark"}
	tree := NewBKTreeFromWords(words)

	var walk func(n *bkNode)
	walk = func(n *bkNode) {
		for d, child := range n.children {
			assert.Equal(t, d, Levenshtein(n.root, child.root),
				"edge distance must equal Levenshtein(parent, child)")
			walk(child)
		}
	}
	walk(tree.root)
}

func TestBKTreeEmptyQuery(t *testing.T) {
	tree := NewBKTree()
	assert.Nil(t, tree.Query("anything", 5))
}
