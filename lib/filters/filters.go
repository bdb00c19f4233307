// Package filters holds the predicates the importers apply while loading
// data: which areas, which measures, and which years to keep. A nil filter
// and a filter with no entries both mean "no restriction".
package filters

import (
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// AreaFilter keeps an area when any of its terms is a case-insensitive
// substring of the authority code or of one of the area's names.
type AreaFilter struct {
	terms *set.Set[string]
}

func NewAreaFilter(terms ...string) *AreaFilter {
	result := &AreaFilter{
		terms: set.New[string](len(terms)),
	}

	for _, t := range terms {
		result.terms.Insert(strings.ToLower(t))
	}

	return result
}

func (f *AreaFilter) Matches(values ...string) bool {
	if f == nil || f.terms.Size() == 0 {
		return true
	}

	for _, term := range f.terms.Slice() {
		for _, value := range values {
			if strings.Contains(strings.ToLower(value), term) {
				return true
			}
		}
	}

	return false
}

func (f *AreaFilter) Size() int {
	if f == nil {
		return 0
	}
	return f.terms.Size()
}

// MeasureFilter keeps a measure when its lowercase codename is one of the
// filter's entries.
type MeasureFilter struct {
	codes *set.Set[string]
}

func NewMeasureFilter(codes ...string) *MeasureFilter {
	result := &MeasureFilter{
		codes: set.New[string](len(codes)),
	}

	for _, c := range codes {
		result.codes.Insert(strings.ToLower(c))
	}

	return result
}

func (f *MeasureFilter) Matches(code string) bool {
	if f == nil || f.codes.Size() == 0 {
		return true
	}

	return f.codes.Contains(strings.ToLower(code))
}

func (f *MeasureFilter) Size() int {
	if f == nil {
		return 0
	}
	return f.codes.Size()
}

// YearRange is an inclusive range of years. Both ends 0, or a nil range,
// means all years.
type YearRange struct {
	Start int
	End   int
}

func NewYearRange(start, end int) *YearRange {
	return &YearRange{Start: start, End: end}
}

func (r *YearRange) Contains(year int) bool {
	if r == nil || (r.Start == 0 && r.End == 0) {
		return true
	}

	return year >= r.Start && year <= r.End
}
