package hunspell

import (
	"log"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	normCacheSize     = 100_000
	suggestCacheSize  = 10_000
	keepCaseDirective = "KEEPCASE"
	compoundMinDirect = "COMPOUNDMIN"
	onlyInCompoundKey = "ONLYINCOMPOUND"
)

// Checker is a constructed spell checker: a dictionary table plus the
// affix rules, directives, and compound-rule machinery it was expanded
// from. Use New to build one. A Checker is not safe for concurrent
// mutation; see doc.go.
type Checker struct {
	affix *AffixTable
	dict  *DictionaryTable

	compoundCodes   map[string][]string
	compoundRegexes []*regexp.Regexp

	bkTree  *BKTree
	bkBuilt bool

	distancer    *Distancer
	normCache    *lruCache[string, string]
	suggestCache *lruCache[string, []string]
	repIndex     *repMatcher

	fingerprintCache string
	fingerprintValid bool

	logger *log.Logger
}

// Check reports whether word is a known word, tolerating the
// capitalization variants spec.md §4.3 describes (an all-caps query also
// accepts its title-cased and lowercased forms unless KEEPCASE forbids it;
// a leading-capital query also accepts its lowercased form).
func (c *Checker) Check(word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	if c.CheckExact(word) {
		return true
	}
	if word == strings.ToUpper(word) {
		title := titleCaseWord(word)
		if c.hasFlag(title, keepCaseDirective, nil) {
			return false
		}
		if c.CheckExact(title) || c.CheckExact(strings.ToLower(word)) {
			return true
		}
	}
	lower := lowerFirstRune(word)
	if lower != word && !c.hasFlag(lower, keepCaseDirective, nil) {
		if c.CheckExact(lower) {
			return true
		}
	}
	return false
}

// CheckExact reports whether word is known exactly as given: present in
// the dictionary table with at least one flag group that is not
// ONLYINCOMPOUND-restricted, or (absent from the table) matched by a
// compound rule once COMPOUNDMIN length is reached.
func (c *Checker) CheckExact(word string) bool {
	val, ok := c.dict.lookup(word)
	if !ok {
		return c.checkCompound(word)
	}
	if val.simple || len(val.groups) == 0 {
		return true
	}
	onlyInCompound := c.affix.Directives[onlyInCompoundKey]
	for _, group := range val.groups {
		if onlyInCompound == "" || !containsString(group, onlyInCompound) {
			return true
		}
	}
	return false
}

func (c *Checker) checkCompound(word string) bool {
	minStr := c.affix.Directives[compoundMinDirect]
	if minStr == "" {
		return false
	}
	min := atoiOrZero(minStr)
	if min <= 0 || utf8.RuneCountInString(word) < min {
		return false
	}
	for _, re := range c.compoundRegexes {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

// hasFlag reports whether directive resolves to a configured flag value
// that appears in group (if non-nil) or, otherwise, in the union of word's
// flag groups.
func (c *Checker) hasFlag(word, directive string, group []string) bool {
	flagVal, ok := c.affix.Directives[directive]
	if !ok || flagVal == "" {
		return false
	}
	if group != nil {
		return containsString(group, flagVal)
	}
	val, ok := c.dict.lookup(word)
	if !ok || val.simple {
		return false
	}
	for _, g := range val.groups {
		if containsString(g, flagVal) {
			return true
		}
	}
	return false
}

// Fingerprint returns a content digest of the checker's current dictionary
// table and flag-directive map (see fingerprint.go). The result is cached
// until the next AddWord/RemoveWord.
func (c *Checker) Fingerprint() string {
	if !c.fingerprintValid {
		c.fingerprintCache = fingerprint(c.dict, c.affix.Directives)
		c.fingerprintValid = true
	}
	return c.fingerprintCache
}

// Words returns every surface form currently known to the checker. Order
// is unspecified.
func (c *Checker) Words() []string {
	return c.dict.words()
}

func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

func lowerFirstRune(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToLower(r)) + w[size:]
}

func containsString(xs []string, target string) bool {
	for _, x := range xs {
		if x == target {
			return true
		}
	}
	return false
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
