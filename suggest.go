package hunspell

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const defaultMaxDist = 0.2

// SuggestOption configures a single Suggest call. See WithMaxDist and
// WithLimit.
type SuggestOption func(*suggestOptions)

type suggestOptions struct {
	maxDist float64
	limit   int
}

// WithMaxDist overrides the default maxDist (0.2). A value below 1 is
// interpreted as a fraction of the query word's rune length (spec.md
// §4.6); a value of 1 or more is used directly as an edit-distance radius.
func WithMaxDist(v float64) SuggestOption {
	return func(o *suggestOptions) { o.maxDist = v }
}

// WithLimit caps the number of suggestions returned. The zero value (the
// default, if WithLimit is never passed) means unbounded.
func WithLimit(n int) SuggestOption {
	return func(o *suggestOptions) { o.limit = n }
}

// cacheKey renders suggestOptions into the suggestion cache's string key
// alongside the query word.
func (o suggestOptions) cacheKey(word string) string {
	var b strings.Builder
	b.WriteString(word)
	b.WriteByte(0)
	b.WriteString(strconv.FormatFloat(o.maxDist, 'g', -1, 64))
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(o.limit))
	return b.String()
}

// Suggest returns the known words nearest to word, ordered by the
// comparator in spec.md §4.6: exact match first, then normalization-
// equivalent matches, then Damerau-Levenshtein proximity, then shared-
// prefix length, with a lexicographic tiebreak. Results are memoized by
// (word, options) until the next AddWord/RemoveWord.
func (c *Checker) Suggest(word string, opts ...SuggestOption) []string {
	if word == "" {
		return nil
	}
	o := suggestOptions{maxDist: defaultMaxDist, limit: 0}
	for _, fn := range opts {
		fn(&o)
	}
	key := o.cacheKey(word)
	if cached, ok := c.suggestCache.Get(key); ok {
		return cached
	}
	result := c.computeSuggest(word, o)
	c.suggestCache.Add(key, result)
	return result
}

func (c *Checker) computeSuggest(word string, o suggestOptions) []string {
	c.ensureBKTree()

	runeLen := utf8.RuneCountInString(word)
	radius := effectiveRadius(runeLen, o.maxDist)

	matches := c.bkTree.Query(word, radius)

	seen := make(map[string]bool, len(matches))
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		if c.dict.contains(m.Word) && !seen[m.Word] {
			seen[m.Word] = true
			candidates = append(candidates, m.Word)
		}
	}

	// REP-table candidate generation (spec.md §9 open question,
	// resolved in SPEC_FULL.md §4.6): widen the candidate set with
	// substitution-based forms before ranking, never overriding the
	// comparator itself.
	for _, rc := range c.repIndex.candidates(word) {
		if c.dict.contains(rc) && !seen[rc] {
			seen[rc] = true
			candidates = append(candidates, rc)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return c.compareCandidates(word, candidates[i], candidates[j]) < 0
	})

	if o.limit > 0 && len(candidates) > o.limit {
		candidates = candidates[:o.limit]
	}
	return candidates
}

// effectiveRadius implements spec.md §4.6 step 2.
func effectiveRadius(runeLen int, maxDist float64) int {
	if runeLen == 1 {
		return 1
	}
	if maxDist < 1 {
		r := int(math.Ceil(float64(runeLen) * maxDist))
		if max := runeLen - 1; r > max {
			r = max
		}
		if r < 0 {
			r = 0
		}
		return r
	}
	return int(maxDist)
}

// ensureBKTree lazily builds the BK-tree from the current dictionary table
// on first use, per spec.md §4.7 / §3's lifecycle description.
func (c *Checker) ensureBKTree() {
	if c.bkBuilt {
		return
	}
	c.InitBkTree()
}

// InitBkTree explicitly builds the BK-tree, if it has not been built
// already. Calling it more than once is a no-op.
func (c *Checker) InitBkTree() {
	if c.bkBuilt {
		return
	}
	words := c.dict.words()
	start := nowFunc()
	c.bkTree = NewBKTreeFromWords(words)
	c.bkBuilt = true
	logf(1, "bk-tree: indexed %d words in %v", len(words), nowFunc().Sub(start))
}

// compareCandidates implements the full ranking comparator from spec.md
// §4.6: exact match first, then a sequence of normalizer-equality checks,
// then Damerau distance under the same normalizer sequence, then shared-
// prefix length with q, then a raw lexicographic tiebreak. Returns a
// negative number if a should rank before b, positive if b should rank
// before a, and zero if they are equivalent.
func (c *Checker) compareCandidates(q, a, b string) int {
	if a == q {
		if b == q {
			return 0
		}
		return -1
	}
	if b == q {
		return 1
	}

	na, nb, nq := a, b, q
	for _, stage := range normalizerChain {
		na, nb, nq = c.normalize(stage, na), c.normalize(stage, nb), c.normalize(stage, nq)
		aEq, bEq := na == nq, nb == nq
		if aEq != bEq {
			if aEq {
				return -1
			}
			return 1
		}
	}

	na, nb, nq = a, b, q
	for _, stage := range normalizerChain {
		na, nb, nq = c.normalize(stage, na), c.normalize(stage, nb), c.normalize(stage, nq)
		da, db := c.distancer.Damerau(na, nq), c.distancer.Damerau(nb, nq)
		if da != db {
			if da < db {
				return -1
			}
			return 1
		}
	}

	ra, rb, rq := []rune(a), []rune(b), []rune(q)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	if len(rq) < n {
		n = len(rq)
	}
	for i := 0; i < n; i++ {
		aEq, bEq := ra[i] == rq[i], rb[i] == rq[i]
		if aEq != bEq {
			if aEq {
				return -1
			}
			return 1
		}
	}

	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// normalizerStage identifies one step of the normalizer chain so that
// normalize's memoization cache key doesn't conflate "lowercased s" with
// "collapsed s" for the same input string s.
type normalizerStage byte

const (
	stageLower normalizerStage = iota
	stageCollapse
)

var normalizerChain = []normalizerStage{stageLower, stageCollapse}

// normalize applies one normalizer stage to s, memoizing the result: the
// lowercase stage is applied directly to its input, and the collapse stage
// is always applied to an already-lowercased string, matching spec.md
// §4.6's "each normalizer builds on the previous result".
func (c *Checker) normalize(stage normalizerStage, s string) string {
	key := string(rune(stage)) + s
	if v, ok := c.normCache.Get(key); ok {
		return v
	}
	var result string
	switch stage {
	case stageLower:
		result = strings.ToLower(s)
	case stageCollapse:
		result = collapseRepeats(s)
	}
	c.normCache.Add(key, result)
	return result
}

// collapseRepeats mirrors the JS-style normalizer /(.)\1/gsu -> $1 described
// in spec.md §4.6 literally: a global, non-overlapping regex replace only
// pairs up adjacent duplicates once per pass, it does not reduce an
// arbitrarily long run to a single code point. "aaaa" therefore collapses
// to "aa" (two non-overlapping "aa" matches, each replaced by "a"), not "a";
// a run with odd length leaves its last code point unmatched ("aaa" -> "aa").
func collapseRepeats(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); i++ {
		if i+1 < len(rs) && rs[i] == rs[i+1] {
			b.WriteRune(rs[i])
			i++
			continue
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}
