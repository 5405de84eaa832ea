package hunspell

import (
	"regexp"
	"strconv"
	"strings"
)

// AffixKind distinguishes a prefix rule from a suffix rule.
type AffixKind int

const (
	// PFX marks a prefix rule: entries match/strip at the start of a
	// word and prepend their add text.
	PFX AffixKind = iota
	// SFX marks a suffix rule: entries match/strip at the end of a word
	// and append their add text.
	SFX
)

func (k AffixKind) String() string {
	if k == PFX {
		return "PFX"
	}
	return "SFX"
}

// AffixEntry is one line inside a PFX/SFX block.
type AffixEntry struct {
	// condition is nil when the source condition was ".", meaning
	// "match anything" — no constraint is checked.
	condition *regexp.Regexp
	// removeSuffix is the compiled "remove$" pattern for an SFX entry;
	// nil when remove was "0".
	removeSuffix *regexp.Regexp
	// removePrefix is the literal prefix to strip for a PFX entry
	// (stored literally, per spec.md §4.1); empty when remove was "0".
	removePrefix string
	// Add is the literal text to prepend/append.
	Add string
	// Continuation lists the flags chained onto a form produced by this
	// entry.
	Continuation []string
}

// AffixRule is every PFX or SFX entry sharing one flag.
type AffixRule struct {
	Flag        string
	Kind        AffixKind
	Combineable bool
	Entries     []AffixEntry
}

// ReplacementPair is one REP-table (from, to) substitution candidate.
type ReplacementPair struct {
	From string
	To   string
}

// AffixTable is the parsed form of a .aff file: a rule table keyed by
// flag, a permissive directive map, compound-rule source patterns, and the
// REP replacement table.
type AffixTable struct {
	Rules               map[string]*AffixRule
	Directives          map[string]string
	CompoundRuleSources []string
	ReplacementTable    []ReplacementPair
	FlagMode            FlagMode
}

var lineSplitRe = regexp.MustCompile(`\r?\n`)

func splitLines(text string) []string {
	return lineSplitRe.Split(text, -1)
}

// ParseAffix parses the full text of a .aff file into an AffixTable.
// Malformed lines are tolerated, never rejected: missing fields simply
// propagate as empty tokens or cause that line to be skipped, matching
// spec.md §4.1 and §7's "no exception is raised during parsing" policy.
func ParseAffix(text string) *AffixTable {
	table := &AffixTable{
		Rules:      make(map[string]*AffixRule),
		Directives: make(map[string]string),
	}
	lines := splitLines(text)

	// FLAG may appear anywhere in the file but governs how every
	// "/flags" payload in the same file (including ones on lines before
	// it) is split, so resolve it in a first pass over directive lines.
	for _, raw := range lines {
		fields := fieldsOfDirectiveLine(raw)
		if len(fields) >= 2 && fields[0] == "FLAG" {
			table.Directives["FLAG"] = fields[1]
		}
	}
	table.FlagMode = parseFlagMode(table.Directives["FLAG"])

	i := 0
	for i < len(lines) {
		fields := fieldsOfDirectiveLine(lines[i])
		if len(fields) == 0 {
			i++
			continue
		}
		directive := fields[0]
		switch directive {
		case "PFX", "SFX":
			i = table.parseAffixBlock(lines, i, fields, directive)
		case "COMPOUNDRULE":
			i = table.parseCompoundRuleBlock(lines, i, fields)
		case "REP":
			i = table.parseRepBlock(lines, i, fields)
		default:
			if len(fields) >= 2 {
				table.Directives[directive] = fields[1]
			}
			i++
		}
	}
	return table
}

// fieldsOfDirectiveLine returns the whitespace-split fields of a line, or
// nil if the line is empty or a comment ('#' as the first non-whitespace
// character).
func fieldsOfDirectiveLine(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	return strings.Fields(line)
}

func (table *AffixTable) parseAffixBlock(lines []string, i int, header []string, directive string) int {
	kind := PFX
	if directive == "SFX" {
		kind = SFX
	}
	var code string
	var combineable bool
	var n int
	if len(header) >= 2 {
		code = header[1]
	}
	if len(header) >= 3 {
		combineable = header[2] == "Y"
	}
	if len(header) >= 4 {
		n, _ = strconv.Atoi(header[3])
	}
	rule := &AffixRule{Flag: code, Kind: kind, Combineable: combineable}
	i++
	for k := 0; k < n && i < len(lines); k++ {
		fields := fieldsOfDirectiveLine(lines[i])
		i++
		if len(fields) < 5 {
			continue
		}
		// Fields: PFX|SFX code remove add condition
		removeField, addField, conditionField := fields[2], fields[3], fields[4]
		entry := AffixEntry{}
		if conditionField != "." {
			if kind == SFX {
				if re, err := regexp.Compile(conditionField + "$"); err == nil {
					entry.condition = re
				}
			} else {
				if re, err := regexp.Compile("^" + conditionField); err == nil {
					entry.condition = re
				}
			}
		}
		if removeField != "0" {
			if kind == SFX {
				if re, err := regexp.Compile(removeField + "$"); err == nil {
					entry.removeSuffix = re
				}
			} else {
				entry.removePrefix = removeField
			}
		}
		add, continuation := splitAddAndContinuation(addField)
		entry.Add = add
		entry.Continuation = splitFlags(continuation, table.FlagMode)
		rule.Entries = append(rule.Entries, entry)
	}
	if code != "" {
		table.Rules[code] = rule
	}
	return i
}

func (table *AffixTable) parseCompoundRuleBlock(lines []string, i int, header []string) int {
	var n int
	if len(header) >= 2 {
		n, _ = strconv.Atoi(header[1])
	}
	i++
	for k := 0; k < n && i < len(lines); k++ {
		fields := fieldsOfDirectiveLine(lines[i])
		i++
		if len(fields) >= 2 {
			table.CompoundRuleSources = append(table.CompoundRuleSources, fields[1])
		}
	}
	return i
}

func (table *AffixTable) parseRepBlock(lines []string, i int, header []string) int {
	var n int
	if len(header) >= 2 {
		n, _ = strconv.Atoi(header[1])
	}
	i++
	for k := 0; k < n && i < len(lines); k++ {
		fields := fieldsOfDirectiveLine(lines[i])
		i++
		if len(fields) == 3 {
			table.ReplacementTable = append(table.ReplacementTable, ReplacementPair{From: fields[1], To: fields[2]})
		}
	}
	return i
}

// applyEntry tries to apply entry to word, returning the produced surface
// form and true on success, or ("", false) if the entry's condition (or,
// for SFX, its remove pattern) does not match.
func applyEntry(kind AffixKind, entry AffixEntry, word string) (string, bool) {
	if entry.condition != nil && !entry.condition.MatchString(word) {
		return "", false
	}
	if kind == SFX {
		stem := word
		if entry.removeSuffix != nil {
			loc := entry.removeSuffix.FindStringIndex(stem)
			if loc == nil {
				return "", false
			}
			stem = stem[:loc[0]]
		}
		return stem + entry.Add, true
	}
	stem := word
	if entry.removePrefix != "" {
		if !strings.HasPrefix(stem, entry.removePrefix) {
			return "", false
		}
		stem = stem[len(entry.removePrefix):]
	}
	return entry.Add + stem, true
}
