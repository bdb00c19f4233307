package main

import (
	"github.com/SamuelNetherway460/Beth-Yw/lib/filters"
)

type cmdWithFilters struct {
	Areas    []string `short:"a" help:"The area(s) to import as a comma-separated list of authority codes or name fragments. Omit or set to 'all' to import all areas."`
	Measures []string `short:"m" help:"Select a subset of measures from the dataset(s). Omit or set to 'all' to import all measures."`
	Years    string   `short:"y" default:"0" help:"Focus on a particular year (YYYY) or inclusive range of years (YYYY-ZZZZ)."`
}

func (c *cmdWithFilters) createFilters() (*filters.AreaFilter, *filters.MeasureFilter, *filters.YearRange, error) {
	yearsFilter, err := filters.ParseYearsArg(c.Years)
	if err != nil {
		return nil, nil, nil, err
	}

	return filters.ParseAreaArgs(c.Areas), filters.ParseMeasureArgs(c.Measures), yearsFilter, nil
}
