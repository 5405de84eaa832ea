package hunspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryTableAddWordAdmission(t *testing.T) {
	table := newDictionaryTable()
	table.addWord("cat", nil)
	v, ok := table.lookup("cat")
	require.True(t, ok)
	assert.True(t, v.simple)

	table.addWord("cat", []string{"S"})
	v, ok = table.lookup("cat")
	require.True(t, ok)
	assert.False(t, v.simple)
	assert.Equal(t, [][]string{{"S"}}, v.groups)

	table.addWord("cat", []string{"Z"})
	v, _ = table.lookup("cat")
	assert.Equal(t, [][]string{{"S"}, {"Z"}}, v.groups)
}

func TestDictionaryTableRemoveWord(t *testing.T) {
	table := newDictionaryTable()
	table.addWord("dog", nil)
	assert.True(t, table.contains("dog"))
	table.removeWord("dog")
	assert.False(t, table.contains("dog"))
}

const expanderAff = `FLAG default
PFX U Y 1
PFX U 0 un .
SFX S Y 2
SFX S 0 s [^sxzh]
SFX S 0 es [sxzh]
SFX D N 1
SFX D y ily y
COMPOUNDRULE 1
COMPOUNDRULE CC
ONLYINCOMPOUND Z
`

const expanderDic = `5
happy/UD
cat/S
box/S
foo/C
bar/CZ
`

func TestExpandDictionaryBasicAffixation(t *testing.T) {
	affixTable := ParseAffix(expanderAff)
	result := ExpandDictionary(expanderDic, affixTable)

	for _, w := range []string{"happy", "unhappy", "happily", "cat", "cats", "box", "boxes"} {
		assert.True(t, result.table.contains(w), "expected %q to be admitted", w)
	}
}

func TestExpandDictionaryCombineable(t *testing.T) {
	// "happy/UD": U (PFX, combineable) produces "unhappy"; D (SFX, NOT
	// combineable) produces "happily". Since D is not combineable, the
	// combination step (spec.md §4.2 step 3) should not fire from U's
	// side, and "unhappily" should not be produced by the combination
	// rule (D itself isn't combineable, so U x D never combines).
	affixTable := ParseAffix(expanderAff)
	result := ExpandDictionary(expanderDic, affixTable)
	assert.False(t, result.table.contains("unhappily"))
}

func TestExpandDictionaryCompoundCodes(t *testing.T) {
	affixTable := ParseAffix(expanderAff)
	result := ExpandDictionary(expanderDic, affixTable)

	// "C" appears in the compound-rule source "CC" and is carried by
	// both foo and bar, so it should survive pruning with both
	// headwords recorded (original headwords, not expanded forms).
	require.Contains(t, result.compoundCodes, "C")
	assert.ElementsMatch(t, []string{"foo", "bar"}, result.compoundCodes["C"])

	// "Z" is seeded via ONLYINCOMPOUND and carried only by "bar".
	require.Contains(t, result.compoundCodes, "Z")
	assert.Equal(t, []string{"bar"}, result.compoundCodes["Z"])
}

func TestExpandDictionaryCompoundRegexMatchesWholeWord(t *testing.T) {
	affixTable := ParseAffix(expanderAff)
	result := ExpandDictionary(expanderDic, affixTable)
	require.Len(t, result.compoundRegexes, 1)
	assert.True(t, result.compoundRegexes[0].MatchString("foobar"))
	assert.False(t, result.compoundRegexes[0].MatchString("foobarbaz"))
	assert.False(t, result.compoundRegexes[0].MatchString("foo"))
}

func TestExpandDictionaryPrunesUnusedCompoundCodes(t *testing.T) {
	aff := "COMPOUNDRULE 1\nCOMPOUNDRULE A*B\n"
	dic := "2\nfirst/A\nsecond/B\n"
	affixTable := ParseAffix(aff)
	result := ExpandDictionary(dic, affixTable)
	// '*' is a regex metacharacter with no matching dictionary code; it
	// should never appear as a key.
	assert.NotContains(t, result.compoundCodes, "*")
	assert.Contains(t, result.compoundCodes, "A")
	assert.Contains(t, result.compoundCodes, "B")
}

func TestExpandDictionaryNeedAffix(t *testing.T) {
	aff := "NEEDAFFIX X\nSFX S Y 1\nSFX S 0 s .\n"
	dic := "1\nstem/XS\n"
	affixTable := ParseAffix(aff)
	result := ExpandDictionary(dic, affixTable)
	// The base headword carries the NEEDAFFIX flag, so it should not be
	// admitted on its own...
	assert.False(t, result.table.contains("stem"))
	// ...but the rule-code list is still processed to generate derived
	// surface forms from it.
	assert.True(t, result.table.contains("stems"))
}

func TestExpandDictionarySkipsTabCommentsAndCountHint(t *testing.T) {
	dic := "3\n\tthis is a comment\nalpha\nbeta\n"
	affixTable := ParseAffix("")
	result := ExpandDictionary(dic, affixTable)
	assert.True(t, result.table.contains("alpha"))
	assert.True(t, result.table.contains("beta"))
	assert.False(t, result.table.contains("3"))
}
