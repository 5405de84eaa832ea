package hunspell

// bkNode is one node of a Burkhard-Keller tree: a pivot string plus a
// distance-keyed map of children. For any child c stored under key d,
// Levenshtein(n.root, c.root) == d; a given distance has at most one
// child, which is exactly what the map enforces.
type bkNode struct {
	root     string
	children map[int]*bkNode
}

func newBkNode(root string) *bkNode {
	return &bkNode{root: root, children: make(map[int]*bkNode)}
}

// BKTree is a metric-space index over strings keyed by Levenshtein
// distance. It supports insertion and bounded-radius queries in time that,
// for a reasonably balanced tree, is much better than scanning every
// indexed word for every query.
type BKTree struct {
	root *bkNode
}

// NewBKTree returns an empty BK-tree.
func NewBKTree() *BKTree {
	return &BKTree{}
}

// NewBKTreeFromWords builds a BK-tree from an initial word list, using the
// last element as the root of the tree and inserting the rest.
func NewBKTreeFromWords(words []string) *BKTree {
	t := &BKTree{}
	if len(words) == 0 {
		return t
	}
	t.root = newBkNode(words[len(words)-1])
	for _, w := range words[:len(words)-1] {
		t.Insert(w)
	}
	return t
}

// Insert adds term to the tree. Inserting a term already present in the
// tree is a no-op.
func (t *BKTree) Insert(term string) {
	if t.root == nil {
		t.root = newBkNode(term)
		return
	}
	n := t.root
	for {
		if term == n.root {
			return
		}
		d := Levenshtein(n.root, term)
		child, ok := n.children[d]
		if !ok {
			n.children[d] = newBkNode(term)
			return
		}
		n = child
	}
}

// BKMatch is one result of a BK-tree radius query: a matched word and its
// Levenshtein distance from the query string.
type BKMatch struct {
	Word string
	Dist int
}

// Query returns every term in the tree within Levenshtein distance r of q.
// Order is not guaranteed; ranking results for display is the suggester's
// job (see suggest.go).
func (t *BKTree) Query(q string, r int) []BKMatch {
	if t.root == nil {
		return nil
	}
	var results []BKMatch
	var visit func(n *bkNode)
	visit = func(n *bkNode) {
		d := Levenshtein(n.root, q)
		if d <= r {
			results = append(results, BKMatch{Word: n.root, Dist: d})
		}
		lo, hi := d-r, d+r
		for dist, child := range n.children {
			if dist >= lo && dist <= hi {
				visit(child)
			}
		}
	}
	visit(t.root)
	return results
}
