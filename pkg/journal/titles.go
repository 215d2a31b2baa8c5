package journal

import (
	"sort"
	"strconv"
	"strings"
)

// Display order for subjects and books: titles ending in an integer come
// first, ordered by that integer, then the rest alphabetically without
// regard to case. The order is applied when mappings are materialized; it
// is never persisted.

// TitleLess reports whether a sorts before b under the display order.
func TitleLess(a, b string) bool {
	an, aNum := trailingNumber(a)
	bn, bNum := trailingNumber(b)
	switch {
	case aNum && bNum:
		if an != bn {
			return an < bn
		}
		return strings.ToLower(a) < strings.ToLower(b)
	case aNum:
		return true
	case bNum:
		return false
	default:
		return strings.ToLower(a) < strings.ToLower(b)
	}
}

// SortTitles orders titles in place under the display order.
func SortTitles(titles []string) {
	sort.SliceStable(titles, func(i, j int) bool {
		return TitleLess(titles[i], titles[j])
	})
}

func trailingNumber(title string) (int, bool) {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}
