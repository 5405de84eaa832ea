package hunspell

import "github.com/coregx/ahocorasick"

// repEntry pairs one REP-table substitution with the single-pattern
// automaton that finds its "from" text. coregx-coregex (meta/compile.go)
// builds one shared automaton over all of its literal alternatives because
// it only needs to know whether *some* literal matched; this module needs
// to know *which* REP pair matched so it can apply the right replacement,
// and the pack shows no pattern-identifying field on a match (meta/find.go
// reads only m.Start/m.End off the result), so a matcher is built per pair
// instead of one combined automaton.
type repEntry struct {
	automaton *ahocorasick.Automaton
	pair      ReplacementPair
}

// repMatcher finds every occurrence of any REP-table "from" string inside a
// query word, using Aho-Corasick pattern matching — the same
// github.com/coregx/ahocorasick dependency coregx-coregex builds its
// literal-alternation automaton from (meta/compile.go) — rather than
// scanning the REP table with strings.Index in a loop. See SPEC_FULL.md
// §4.10 and DESIGN.md.
type repMatcher struct {
	entries []repEntry
}

// buildRepMatcher returns nil when table is empty: REP-table candidate
// generation is skipped entirely for the common case of a dictionary with
// no REP section, so no automaton is built and no cost is paid.
func buildRepMatcher(table []ReplacementPair) *repMatcher {
	if len(table) == 0 {
		return nil
	}
	m := &repMatcher{entries: make([]repEntry, 0, len(table))}
	for _, pair := range table {
		builder := ahocorasick.NewBuilder()
		builder.AddPattern([]byte(pair.From))
		auto, err := builder.Build()
		if err != nil {
			continue
		}
		m.entries = append(m.entries, repEntry{automaton: auto, pair: pair})
	}
	return m
}

// candidates returns every string obtainable from word by replacing one
// matched REP "from" occurrence with its "to" counterpart. Each pair's
// automaton is walked the way meta/find.go's findAhoCorasickAt walks its
// single shared one: repeated Find(haystack, at) calls advancing at to the
// end of the previous match (or one past a zero-width match) until Find
// returns nil. Overlapping matches across different pairs, and repeated
// matches of the same pair, each produce their own candidate; callers are
// expected to filter the result against the dictionary table before using
// it (most synthesized strings will not be real words).
func (m *repMatcher) candidates(word string) []string {
	if m == nil {
		return nil
	}
	haystack := []byte(word)
	var out []string
	for _, e := range m.entries {
		at := 0
		for at <= len(haystack) {
			match := e.automaton.Find(haystack, at)
			if match == nil {
				break
			}
			out = append(out, word[:match.Start]+e.pair.To+word[match.End:])
			if match.End > match.Start {
				at = match.End
			} else {
				at = match.Start + 1
			}
		}
	}
	return out
}
