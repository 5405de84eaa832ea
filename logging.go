package hunspell

import "github.com/golang/glog"

// logf logs a verbosity-gated diagnostic message the way google-kati logs
// its rule-trie and dependency-graph internals: via glog.V(n), so a host
// program that never initializes -v/-vmodule pays essentially nothing for
// it, while a caller debugging a misbehaving dictionary can turn it on.
//
// The core never calls glog.Fatal or glog.Exit: spec.md §7 is explicit that
// the core surfaces no error values and normalizes every failure to a
// benign output, and that policy extends to never aborting the process
// from inside the library.
func logf(level glog.Level, format string, args ...any) {
	if glog.V(level) {
		glog.Infof(format, args...)
	}
}
