package hunspell

import "strings"

// FlagMode selects how a "/flags" suffix in a .aff or .dic file is split
// into individual flag tokens. The active mode is controlled by the FLAG
// directive; see parseFlagMode.
type FlagMode int

const (
	// FlagModeDefault splits a flag string into one flag per code point.
	// This is Hunspell's default when no FLAG directive is present.
	FlagModeDefault FlagMode = iota
	// FlagModeLong splits a flag string into fixed-width two-character
	// groups (FLAG long).
	FlagModeLong
	// FlagModeNum splits a flag string on commas into numeric tokens
	// (FLAG num).
	FlagModeNum
	// FlagModeUTF8 splits a flag string into one flag per Unicode scalar
	// (FLAG UTF-8). In a UTF-8-native language this coincides with
	// FlagModeDefault; both are kept as distinct constants for fidelity
	// to the directive they come from.
	FlagModeUTF8
)

// parseFlagMode maps the second token of a FLAG directive line to a
// FlagMode. Any value other than "long", "num", or "UTF-8" (including an
// absent directive) yields FlagModeDefault.
func parseFlagMode(directiveValue string) FlagMode {
	switch directiveValue {
	case "long":
		return FlagModeLong
	case "num":
		return FlagModeNum
	case "UTF-8":
		return FlagModeUTF8
	default:
		return FlagModeDefault
	}
}

// splitFlags parses a "/flags" payload (the part after the slash) into
// individual flag tokens according to mode. An empty string yields a nil
// slice.
func splitFlags(s string, mode FlagMode) []string {
	if s == "" {
		return nil
	}
	switch mode {
	case FlagModeLong:
		rs := []rune(s)
		out := make([]string, 0, len(rs)/2+1)
		for i := 0; i+1 < len(rs); i += 2 {
			out = append(out, string(rs[i:i+2]))
		}
		return out
	case FlagModeNum:
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out
	default: // FlagModeDefault, FlagModeUTF8
		out := make([]string, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}
		return out
	}
}

// splitWordAndFlags splits a .dic line's word token on the first "/",
// returning the headword and the raw flag payload (empty if there was no
// slash).
func splitWordAndFlags(token string) (word string, flags string) {
	if i := strings.IndexByte(token, '/'); i >= 0 {
		return token[:i], token[i+1:]
	}
	return token, ""
}

// splitAddAndContinuation splits an affix entry's "add" field on the first
// "/", returning the literal text to add and the raw continuation-class
// flag payload (empty if there was no slash, or if add is "0").
func splitAddAndContinuation(field string) (add string, continuation string) {
	add, continuation = splitWordAndFlags(field)
	if add == "0" {
		add = ""
	}
	return add, continuation
}
