package hunspell

import (
	"regexp"
	"strings"
)

// dictValue is the value half of the DictionaryTable map described in
// spec.md §3. A dictValue with simple == true (and groups == nil)
// represents "known, no flags"; a dictValue with simple == false and
// groups possibly empty represents "known, with (possibly zero so far)
// flag-group memberships" — both are accepted by checkExact per the
// invariant in spec.md §3.
type dictValue struct {
	simple bool
	groups [][]string
}

// DictionaryTable maps surface-form strings to their flag-group
// membership, or is silent (absent) for unknown words.
type DictionaryTable struct {
	entries map[string]*dictValue
}

func newDictionaryTable() *DictionaryTable {
	return &DictionaryTable{entries: make(map[string]*dictValue)}
}

// addWord implements spec.md §4.2's admission semantics: a first sighting
// of w sets its value to "no flags"; a non-empty ruleList lifts that value
// to a list-of-lists (starting from an empty list the first time) and
// appends ruleList to it.
func (t *DictionaryTable) addWord(w string, ruleList []string) {
	v, ok := t.entries[w]
	if !ok {
		v = &dictValue{simple: true}
		t.entries[w] = v
	}
	if len(ruleList) == 0 {
		return
	}
	if v.simple {
		v.simple = false
		v.groups = [][]string{}
	}
	v.groups = append(v.groups, ruleList)
}

// removeWord deletes w from the table entirely.
func (t *DictionaryTable) removeWord(w string) {
	delete(t.entries, w)
}

// lookup returns w's value and whether it is present at all.
func (t *DictionaryTable) lookup(w string) (*dictValue, bool) {
	v, ok := t.entries[w]
	return v, ok
}

// contains reports whether w is present in the table, independent of its
// flag-group acceptance semantics (used by the suggester's post-BK-tree
// filter, which only cares whether a candidate still exists at all).
func (t *DictionaryTable) contains(w string) bool {
	_, ok := t.entries[w]
	return ok
}

// words returns every key currently in the table. Order is unspecified.
func (t *DictionaryTable) words() []string {
	out := make([]string, 0, len(t.entries))
	for w := range t.entries {
		out = append(out, w)
	}
	return out
}

// expansionResult bundles everything ExpandDictionary produces beyond the
// DictionaryTable itself.
type expansionResult struct {
	table           *DictionaryTable
	compoundCodes   map[string][]string
	compoundRegexes []*regexp.Regexp
}

// ExpandDictionary consumes the text of a .dic file together with the
// already-parsed affix table and produces the full surface-form
// dictionary, the compound-rule-code word lists, and the compiled
// compound-rule regexes, per spec.md §4.2.
func ExpandDictionary(dicText string, affix *AffixTable) *expansionResult {
	table := newDictionaryTable()
	compoundCodes := seedCompoundRuleCodes(affix)

	needAffixFlag := affix.Directives["NEEDAFFIX"]

	lines := splitLines(dicText)
	seenFirstContent := false
	for _, raw := range lines {
		if strings.HasPrefix(raw, "\t") {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !seenFirstContent {
			// First non-empty, non-comment line is a count hint;
			// ignored per spec.md §4.2.
			seenFirstContent = true
			continue
		}
		word, flagsField := splitWordAndFlags(line)
		if word == "" {
			continue
		}
		ruleCodes := splitFlags(flagsField, affix.FlagMode)

		admitted := true
		if needAffixFlag != "" {
			for _, c := range ruleCodes {
				if c == needAffixFlag {
					admitted = false
					break
				}
			}
		}
		if admitted {
			// The headword's own flags become its one membership
			// group (empty when it had no /flags at all), per
			// spec.md §4.2's admission rule.
			table.addWord(word, ruleCodes)
		}

		applyRuleCodes(table, affix, compoundCodes, word, ruleCodes)
	}

	pruneEmptyCompoundCodes(compoundCodes)
	regexes := compileCompoundRules(affix.CompoundRuleSources, compoundCodes)

	return &expansionResult{table: table, compoundCodes: compoundCodes, compoundRegexes: regexes}
}

// seedCompoundRuleCodes pre-populates an empty word list for every
// character appearing in any compound-rule source pattern, plus the
// ONLYINCOMPOUND flag if that directive is configured, per spec.md §4.2.
func seedCompoundRuleCodes(affix *AffixTable) map[string][]string {
	codes := make(map[string][]string)
	for _, source := range affix.CompoundRuleSources {
		for _, r := range source {
			c := string(r)
			if _, ok := codes[c]; !ok {
				codes[c] = nil
			}
		}
	}
	if flag := affix.Directives["ONLYINCOMPOUND"]; flag != "" {
		if _, ok := codes[flag]; !ok {
			codes[flag] = nil
		}
	}
	return codes
}

// applyRuleCodes runs spec.md §4.2's "rule application" steps 1-4 for one
// .dic line's headword and parsed rule codes.
func applyRuleCodes(table *DictionaryTable, affix *AffixTable, compoundCodes map[string][]string, word string, ruleCodes []string) {
	for idx, code := range ruleCodes {
		if rule, ok := affix.Rules[code]; ok {
			for _, entry := range rule.Entries {
				newForm, applied := applyEntry(rule.Kind, entry, word)
				if !applied {
					continue
				}
				table.addWord(newForm, nil)
				for _, contCode := range entry.Continuation {
					expandContinuation(table, affix, contCode, newForm)
				}
				if rule.Combineable {
					applyCombinations(table, affix, rule, newForm, ruleCodes[idx+1:])
				}
			}
		}
		if _, tracked := compoundCodes[code]; tracked {
			compoundCodes[code] = append(compoundCodes[code], word)
		}
	}
}

// expandContinuation recursively applies rule code to form, chaining
// through every continuation class the produced entries carry. Real
// dictionaries are assumed finite (spec.md §9); no cycle guard is applied
// here to match the source behavior, though one could be added defensively
// by tracking visited (code, form) pairs.
func expandContinuation(table *DictionaryTable, affix *AffixTable, code string, form string) {
	rule, ok := affix.Rules[code]
	if !ok {
		// Unresolved continuation class: silently ignored, per
		// spec.md §7.
		return
	}
	for _, entry := range rule.Entries {
		newForm, applied := applyEntry(rule.Kind, entry, form)
		if !applied {
			continue
		}
		table.addWord(newForm, nil)
		for _, contCode := range entry.Continuation {
			expandContinuation(table, affix, contCode, newForm)
		}
	}
}

// applyCombinations implements spec.md §4.2 step 3: for every subsequent
// code in the same .dic line's rule-code list that names a combineable
// rule of the opposite affix kind, apply it once to the already-produced
// form. Continuations from this second application are not chained.
func applyCombinations(table *DictionaryTable, affix *AffixTable, rule *AffixRule, form string, remainingCodes []string) {
	for _, code2 := range remainingCodes {
		rule2, ok := affix.Rules[code2]
		if !ok || !rule2.Combineable || rule2.Kind == rule.Kind {
			continue
		}
		for _, entry2 := range rule2.Entries {
			combined, applied := applyEntry(rule2.Kind, entry2, form)
			if applied {
				table.addWord(combined, nil)
			}
		}
	}
}

func pruneEmptyCompoundCodes(codes map[string][]string) {
	for k, v := range codes {
		if len(v) == 0 {
			delete(codes, k)
		}
	}
}

// compileCompoundRules turns each compound-rule source pattern into a
// case-insensitive, whole-string-anchored regex, replacing every character
// that is a live compound-rule-code key with an alternation of its
// (quoted) headwords and passing every other character through verbatim.
func compileCompoundRules(sources []string, codes map[string][]string) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, source := range sources {
		var b strings.Builder
		b.WriteString("(?i)^")
		for _, r := range source {
			c := string(r)
			if words, ok := codes[c]; ok {
				b.WriteByte('(')
				for i, w := range words {
					if i > 0 {
						b.WriteByte('|')
					}
					b.WriteString(regexp.QuoteMeta(w))
				}
				b.WriteByte(')')
				continue
			}
			b.WriteString(c)
		}
		b.WriteByte('$')
		if re, err := regexp.Compile(b.String()); err == nil {
			out = append(out, re)
		}
	}
	return out
}
