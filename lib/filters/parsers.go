package filters

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	singleYearRE = regexp.MustCompile(`^\d{4}$`)
	yearRangeRE  = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
)

// ParseAreaArgs builds the area filter from command line values. An empty
// list, or any entry equal to "all" (any case), means no restriction.
func ParseAreaArgs(args []string) *AreaFilter {
	if containsAll(args) {
		return NewAreaFilter()
	}

	return NewAreaFilter(args...)
}

// ParseMeasureArgs builds the measure filter from command line values. An
// empty list, or any entry equal to "all" (any case), means no restriction.
func ParseMeasureArgs(args []string) *MeasureFilter {
	if containsAll(args) {
		return NewMeasureFilter()
	}

	return NewMeasureFilter(args...)
}

// ParseYearsArg parses the years argument: a single year (YYYY), an inclusive
// range (YYYY-ZZZZ), or 0 / 0-0 / empty for all years.
func ParseYearsArg(arg string) (*YearRange, error) {
	arg = strings.TrimSpace(arg)

	switch {
	case arg == "" || arg == "0" || arg == "0-0":
		return NewYearRange(0, 0), nil

	case singleYearRE.MatchString(arg):
		year, _ := strconv.Atoi(arg)
		return NewYearRange(year, year), nil

	case yearRangeRE.MatchString(arg):
		m := yearRangeRE.FindStringSubmatch(arg)
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		return NewYearRange(start, end), nil

	default:
		return nil, errors.Errorf("invalid input for years argument: %v", arg)
	}
}

func containsAll(args []string) bool {
	return lo.ContainsBy(args, func(a string) bool {
		return strings.EqualFold(strings.TrimSpace(a), "all")
	})
}
