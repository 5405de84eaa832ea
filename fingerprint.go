package hunspell

import (
	"encoding/hex"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// fingerprint computes a stable BLAKE2b-256 digest over the checker's
// current surface-form set and flag-directive map. Two checkers built from
// byte-identical .aff/.dic content produce identical fingerprints, which
// lets a caller holding several dictionaries (e.g. one per locale) cheaply
// tell which ones are actually distinct without diffing their full tables.
// Grounded on opal-lang-opal's dependency on golang.org/x/crypto; see
// SPEC_FULL.md §4.9.
func fingerprint(table *DictionaryTable, directives map[string]string) string {
	words := table.words()
	sort.Strings(words)

	dirKeys := make([]string, 0, len(directives))
	for k := range directives {
		dirKeys = append(dirKeys, k)
	}
	sort.Strings(dirKeys)

	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only errors on a bad key length, and nil is
		// always valid; this branch is unreachable in practice.
		return ""
	}
	for _, w := range words {
		h.Write([]byte(w))
		h.Write([]byte{0})
	}
	h.Write([]byte{0xff})
	for _, k := range dirKeys {
		h.Write([]byte(k))
		h.Write([]byte{'='})
		h.Write([]byte(directives[k]))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
