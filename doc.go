// Package hunspell implements a Hunspell-style affix-aware spell checker.
//
// Given the text of a Hunspell ".aff" affix file and a ".dic" dictionary
// file, a Checker materializes the full set of surface word forms those
// two files describe (prefix/suffix rules, continuation classes, and
// compound-rule membership all included) and answers two questions about
// arbitrary input tokens: is this word known, with a small amount of
// capitalization tolerance, and what are the nearest known words to it.
//
// The nearest-word search is backed by a Burkhard-Keller tree keyed on
// Levenshtein distance, which is a true metric and therefore safe to prune
// a tree traversal with via the triangle inequality. Candidates pulled from
// that tree are then re-ranked for a human reader using Damerau-Levenshtein
// distance in its optimal string alignment form, which is not a metric (and
// is therefore
// never used for tree traversal, only for sorting a small candidate list)
// but matches human intuition about nearby typos — in particular adjacent
// transpositions — much better than Levenshtein distance alone.
//
// A Checker is built once from its .aff/.dic content; the BK-tree backing
// Suggest is built lazily on first use. AddWord and RemoveWord mutate the
// dictionary table directly; RemoveWord does not prune the BK-tree, so
// Suggest filters its candidate set against the current dictionary table on
// every call.
//
// A Checker is not safe for concurrent mutation: readers racing a
// concurrent AddWord/RemoveWord may observe torn state. Check, CheckExact
// and Words only read, and may run concurrently on a Checker that nothing
// is mutating. Suggest, InitBkTree and Fingerprint update the Checker's
// internal caches and scratch buffers (and Suggest builds the BK-tree on
// first use) without locking, so they are not safe to run concurrently with
// any other call on the same Checker.
package hunspell
