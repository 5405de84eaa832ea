package hunspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkerAff = `FLAG default
SFX S Y 1
SFX S 0 s .
KEEPCASE K
COMPOUNDMIN 3
COMPOUNDRULE 1
COMPOUNDRULE CC
ONLYINCOMPOUND Z
`

const checkerDic = `4
hospital/S
Paris/K
foo/CZ
bar/C
`

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	c, err := New(checkerAff, checkerDic)
	require.NoError(t, err)
	return c
}

func TestCheckExactKnownWord(t *testing.T) {
	c := newTestChecker(t)
	assert.True(t, c.CheckExact("hospital"))
	assert.False(t, c.CheckExact("hostipal"))
}

func TestCheckCapitalizationTolerance(t *testing.T) {
	c := newTestChecker(t)
	assert.True(t, c.Check("hospital"))
	assert.True(t, c.Check("Hospital"))
	assert.True(t, c.Check("HOSPITAL"))
}

func TestCheckKeepCaseRejectsVariants(t *testing.T) {
	c := newTestChecker(t)
	assert.True(t, c.Check("Paris"))
	// KEEPCASE forbids the lowercase/uppercase variants.
	assert.False(t, c.Check("PARIS"))
	assert.False(t, c.Check("paris"))
}

func TestCheckEmptyInput(t *testing.T) {
	c := newTestChecker(t)
	assert.False(t, c.Check(""))
	assert.False(t, c.Check("   "))
}

func TestCheckExactOnlyInCompoundIsNotStandalone(t *testing.T) {
	c := newTestChecker(t)
	// "foo"'s only flag group {C, Z} includes Z (ONLYINCOMPOUND), so it's
	// not accepted standalone...
	assert.False(t, c.CheckExact("foo"))
	// ...but "bar" carries only "C" (not ONLYINCOMPOUND), so it is.
	assert.True(t, c.CheckExact("bar"))
}

func TestCheckExactCompoundFallback(t *testing.T) {
	c := newTestChecker(t)
	// Neither "foobar" nor "barfoo" is itself in the dictionary table,
	// but the CC compound rule (built from words carrying "C": foo and
	// bar) should match any CC compound at least COMPOUNDMIN long.
	assert.True(t, c.CheckExact("foobar"))
	assert.True(t, c.CheckExact("barfoo"))
	assert.False(t, c.CheckExact("foofoofoo"))
}

func TestWordsEnumeratesDictionary(t *testing.T) {
	c := newTestChecker(t)
	words := c.Words()
	assert.Contains(t, words, "hospital")
	assert.Contains(t, words, "hospitals")
}

func TestAddWordAndRemoveWord(t *testing.T) {
	c := newTestChecker(t)
	assert.False(t, c.Check("gadzooks"))
	c.AddWord("gadzooks")
	assert.True(t, c.Check("gadzooks"))
	c.RemoveWord("gadzooks")
	assert.False(t, c.Check("gadzooks"))
}

func TestAddWordWithFlagGroupsStoredVerbatim(t *testing.T) {
	c := newTestChecker(t)
	c.AddWord("zaz", []string{"Z"})
	// "zaz" now carries only the ONLYINCOMPOUND flag group, so it is
	// known but not accepted standalone — matching the admission
	// semantics of a dictionary-sourced word with the same flag, and
	// confirming flagGroups are never re-expanded through affix rules.
	assert.False(t, c.CheckExact("zaz"))
	val, ok := c.dict.lookup("zaz")
	require.True(t, ok)
	assert.Equal(t, [][]string{{"Z"}}, val.groups)
}
