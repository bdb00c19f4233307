package importers

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/SamuelNetherway460/Beth-Yw/lib/datasets"
	"github.com/SamuelNetherway460/Beth-Yw/lib/filters"
	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
)

// Wide time series CSVs carry the authority code column plus one column per
// year, for exactly this many header columns.
const timeseriesColumns = 12

// populateFromAuthorityByYearCSV parses a single measure CSV whose header is
// the authority code column followed by year columns. Each row becomes one
// area holding one measure, with the measure's code and name taken from the
// mapping's single-measure constants.
func (i *Importer) populateFromAuthorityByYearCSV(
	r *bufio.Reader,
	cols datasets.ColumnMapping,
	dst *model.Areas,
	areasFilter *filters.AreaFilter,
	measuresFilter *filters.MeasureFilter,
	yearsFilter *filters.YearRange,
) error {
	codeCol, err := cols.Get(datasets.AuthCode)
	if err != nil {
		return err
	}
	measureCode, err := cols.Get(datasets.SingleMeasureCode)
	if err != nil {
		return err
	}
	measureName, err := cols.Get(datasets.SingleMeasureName)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return &SourceError{Msg: "empty or unreadable source", Cause: scanner.Err()}
	}

	header := strings.Split(scanner.Text(), ",")
	if header[0] != codeCol {
		return &SchemaError{Msg: "no column found with title: " + codeCol}
	}
	if len(header) != timeseriesColumns {
		return &SchemaError{Msg: "invalid number of columns in header"}
	}

	years := parseYearColumns(header)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		tokens := strings.Split(line, ",")

		if !areasFilter.Matches(tokens[0]) {
			continue
		}

		area := model.NewArea(tokens[0])

		if measuresFilter.Matches(measureCode) {
			measure := model.NewMeasure(measureCode, measureName)

			for n, year := range years {
				if n+1 >= len(tokens) {
					i.log.Warn("row has fewer values than year columns", "code", tokens[0])
					break
				}

				value, err := strconv.ParseFloat(tokens[n+1], 64)
				if err != nil {
					i.log.Warn("skipping unparseable value", "code", tokens[0], "year", year, "value", tokens[n+1])
					continue
				}

				if yearsFilter.Contains(year) {
					measure.SetValue(year, value)
				}
			}

			area.SetMeasure(measure.Code(), measure)
		}

		dst.SetArea(tokens[0], area)
	}

	return errors.Wrap(scanner.Err(), "error reading source")
}

// parseYearColumns converts the year headers to integers. A non-numeric year
// header degrades to an empty year list instead of failing the import.
func parseYearColumns(header []string) []int {
	years := make([]int, 0, len(header)-1)

	for _, t := range header[1:] {
		year, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return nil
		}
		years = append(years, year)
	}

	return years
}
