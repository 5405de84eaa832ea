package hunspell

import "time"

// nowFunc is a seam over time.Now so BK-tree build-timing logs (see
// InitBkTree) are the only place this package touches wall-clock time.
var nowFunc = time.Now
