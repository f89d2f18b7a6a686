package normalize

import (
	"fmt"
	"sort"
	"strings"
)

// Numbering is the result of comparing a folder's track numbers with the
// contiguous range 1..Count.
type Numbering struct {
	// Count is the number of tracks in the folder.
	Count int

	// Missing lists values of 1..Count no track carries.
	Missing []int

	// Duplicates lists values carried by more than one track.
	Duplicates []int

	// OutOfRange lists values outside 1..Count.
	OutOfRange []int

	// Invalid is the number of tracks without a numeric track number.
	Invalid int
}

// CheckNumbering compares numbers with 1..count. Tracks whose number could
// not be parsed are part of count but not of numbers.
//
// Example:
//
//	CheckNumbering([]int{1, 2, 4}, 3).OK() // false, 3 missing, 4 out of range
//	CheckNumbering([]int{1, 2, 3}, 3).OK() // true
func CheckNumbering(numbers []int, count int) Numbering {
	n := Numbering{Count: count}
	if len(numbers) < count {
		n.Invalid = count - len(numbers)
	}

	seen := make(map[int]int, len(numbers))
	for _, num := range numbers {
		seen[num]++
	}

	for i := 1; i <= count; i++ {
		if seen[i] == 0 {
			n.Missing = append(n.Missing, i)
		}
	}
	for num, c := range seen {
		if c > 1 {
			n.Duplicates = append(n.Duplicates, num)
		}
		if num < 1 || num > count {
			n.OutOfRange = append(n.OutOfRange, num)
		}
	}
	sort.Ints(n.Duplicates)
	sort.Ints(n.OutOfRange)

	return n
}

// OK reports whether the numbers are exactly 1..Count.
func (n Numbering) OK() bool {
	return len(n.Missing) == 0 && len(n.Duplicates) == 0 && len(n.OutOfRange) == 0 && n.Invalid == 0
}

// String describes the problems found, or "ok".
func (n Numbering) String() string {
	if n.OK() {
		return "ok"
	}

	var parts []string
	if len(n.Missing) > 0 {
		parts = append(parts, "missing "+joinInts(n.Missing))
	}
	if len(n.Duplicates) > 0 {
		parts = append(parts, "duplicate "+joinInts(n.Duplicates))
	}
	if len(n.OutOfRange) > 0 {
		parts = append(parts, "out of range "+joinInts(n.OutOfRange))
	}
	if n.Invalid > 0 {
		parts = append(parts, fmt.Sprintf("%d without a number", n.Invalid))
	}
	return fmt.Sprintf("%d tracks: %s", n.Count, strings.Join(parts, ", "))
}

func joinInts(nums []int) string {
	s := make([]string, len(nums))
	for i, n := range nums {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, ", ")
}
