package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	idRegex   = regexp.MustCompile(`^([A-Z]{2,3})([0-9]{3})$`)
	codeRegex = regexp.MustCompile(`^[A-Z]{2,3}$`)
)

const (
	// SuffixMin and SuffixMax bound the numeric space of one category.
	SuffixMin = 0
	SuffixMax = 999

	// DefaultFloor is the first suffix handed out in a category unless
	// configured otherwise. 000 stays free for hand-assigned anchors.
	DefaultFloor = 1
)

// ComponentID is a parsed component identifier: a 2-3 letter category code
// followed by a three-digit suffix (e.g. AC201, ENV003).
type ComponentID struct {
	Code   string // e.g. "AC"
	Suffix int    // e.g. 201
}

func (id ComponentID) String() string {
	return FormatID(id.Code, id.Suffix)
}

// ParseID splits a component ID into category code and numeric suffix.
func ParseID(raw string) (ComponentID, error) {
	m := idRegex.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return ComponentID{}, fmt.Errorf("invalid component ID: %q", raw)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return ComponentID{}, fmt.Errorf("invalid component ID: %q", raw)
	}
	return ComponentID{Code: m[1], Suffix: n}, nil
}

// IsValidID reports whether a string is a well-formed component ID.
func IsValidID(raw string) bool {
	return idRegex.MatchString(strings.TrimSpace(raw))
}

// IsValidCode reports whether a string is a bare category code (AC, ENV, ...).
func IsValidCode(raw string) bool {
	return codeRegex.MatchString(strings.TrimSpace(raw))
}

// FormatID renders a code and suffix as a canonical ID, e.g. ("AC", 7) -> "AC007".
func FormatID(code string, suffix int) string {
	return fmt.Sprintf("%s%03d", code, suffix)
}

// Range is an inclusive suffix interval reserved inside one category.
type Range struct {
	Start int
	End   int
}

func (r Range) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// Overlaps reports whether two ranges share at least one suffix.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%03d-%03d", r.Start, r.End)
}

// NextCategorySuffix returns the smallest unused suffix >= floor that lies
// outside every reserved range. Reserved ranges belong to families and are
// only allocated through NextFamilySuffix.
func NextCategorySuffix(used map[int]bool, floor int, reserved []Range) (int, error) {
	if floor < SuffixMin {
		floor = SuffixMin
	}
	for n := floor; n <= SuffixMax; n++ {
		if used[n] || suffixReserved(n, reserved) {
			continue
		}
		return n, nil
	}
	return 0, fmt.Errorf("no free suffix at or above %03d outside reserved ranges", floor)
}

// NextFamilySuffix returns the smallest unused suffix inside the range.
// Exhaustion is an error; the suggestion never spills into neighboring ranges.
func NextFamilySuffix(used map[int]bool, r Range) (int, error) {
	for n := r.Start; n <= r.End; n++ {
		if !used[n] {
			return n, nil
		}
	}
	return 0, fmt.Errorf("no free suffix in range %s", r)
}

func suffixReserved(n int, reserved []Range) bool {
	for _, r := range reserved {
		if r.Contains(n) {
			return true
		}
	}
	return false
}
