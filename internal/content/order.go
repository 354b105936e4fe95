package content

import (
	"cmp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators keep internal buffers and are not safe for concurrent use.
var collators = sync.Pool{
	New: func() any { return collate.New(language.English) },
}

// CompareText orders two display strings the way an English reader would,
// so "apple" sorts before "Banana".
func CompareText(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// CompareNumeric compares two values as integers when both parse, and as
// plain strings when neither does. Any integer ranks above any non-integer,
// which keeps the order total, so descending listings put unparseable values
// last.
func CompareNumeric(a, b string) int {
	x, errA := strconv.Atoi(strings.TrimSpace(a))
	y, errB := strconv.Atoi(strings.TrimSpace(b))
	switch {
	case errA == nil && errB != nil:
		return 1
	case errA != nil && errB == nil:
		return -1
	case errA == nil && errB == nil:
		return cmp.Compare(x, y)
	}
	return strings.Compare(a, b)
}

// FeaturedFirst reports whether a featured item should precede b. ok is
// false when both share the same flag and another key must decide.
func FeaturedFirst(a, b bool) (less, ok bool) {
	if a == b {
		return false, false
	}
	return a, true
}
