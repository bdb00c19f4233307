package datasets

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Select resolves the dataset codes given on the command line to datasets to
// import. Codes are matched case-insensitively and may be glob patterns
// ("popu*", "complete-*"). An empty list or any entry equal to "all" selects
// every dataset except the area registry, which is always loaded separately.
func Select(codes []string) ([]Dataset, error) {
	nonRegistry := func() []Dataset {
		var result []Dataset
		for _, d := range all {
			if d.Type != AuthorityCodeCSV {
				result = append(result, d)
			}
		}
		return result
	}

	if len(codes) == 0 {
		return nonRegistry(), nil
	}

	selected := map[string]Dataset{}
	var order []string

	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))

		if code == "all" {
			return nonRegistry(), nil
		}

		g, err := glob.Compile(code)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid dataset pattern: %v", code)
		}

		found := false
		for _, d := range all {
			if d.Type == AuthorityCodeCSV {
				continue
			}
			if !g.Match(d.Code) {
				continue
			}

			found = true
			if _, ok := selected[d.Code]; !ok {
				selected[d.Code] = d
				order = append(order, d.Code)
			}
		}

		if !found {
			return nil, errNoDataset(code)
		}
	}

	result := make([]Dataset, 0, len(order))
	for _, code := range order {
		result = append(result, selected[code])
	}

	return result, nil
}
