// Package reports renders a populated model as either a human readable table
// or a JSON document. It only consumes the model's public read surface.
package reports

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aquilax/truncate"

	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
	"github.com/SamuelNetherway460/Beth-Yw/lib/utils"
)

const maxLabelWidth = 60

// WriteTable renders one block per area, ordered by authority code: the area
// names and code, then each measure ordered by codename with its readings in
// year order plus the derived statistics.
func WriteTable(w io.Writer, areas *model.Areas) error {
	for _, area := range areas.ListAreas() {
		if _, err := fmt.Fprintln(w, areaHeader(area)); err != nil {
			return err
		}

		measures := area.ListMeasures()
		if len(measures) == 0 {
			fmt.Fprintln(w, "<no measures>")
			fmt.Fprintln(w)
			continue
		}

		for _, measure := range measures {
			writeMeasure(w, measure)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func areaHeader(area *model.Area) string {
	eng, engErr := area.GetName("eng")
	cym, cymErr := area.GetName("cym")

	switch {
	case engErr == nil && cymErr == nil:
		return fmt.Sprintf("%v / %v (%v)", eng, cym, area.LocalAuthorityCode())

	case engErr == nil:
		return fmt.Sprintf("%v (%v)", eng, area.LocalAuthorityCode())

	case cymErr == nil:
		return fmt.Sprintf("%v (%v)", cym, area.LocalAuthorityCode())

	default:
		return fmt.Sprintf("Unnamed (%v)", area.LocalAuthorityCode())
	}
}

func writeMeasure(w io.Writer, measure *model.Measure) {
	label := truncate.Truncate(measure.Label(), maxLabelWidth, "...", truncate.PositionEnd)
	fmt.Fprintf(w, "%v (%v)\n", label, measure.Code())

	years := measure.Years()
	if len(years) == 0 {
		fmt.Fprintln(w, "<no data>")
		return
	}

	var headers, values []string

	for _, year := range years {
		value, _ := measure.GetValue(year)
		headers = append(headers, strconv.Itoa(year))
		values = append(values, formatValue(value))
	}

	headers = append(headers, "Average", "Diff.", "% Diff.")
	values = append(values,
		formatValue(measure.Average()),
		formatValue(measure.Difference()),
		formatValue(measure.DifferenceAsPercentage()))

	for n := range headers {
		width := utils.Max(len(headers[n]), len(values[n]))
		headers[n] = fmt.Sprintf("%*s", width, headers[n])
		values[n] = fmt.Sprintf("%*s", width, values[n])
	}

	fmt.Fprintln(w, strings.Join(headers, " "))
	fmt.Fprintln(w, strings.Join(values, " "))
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}
