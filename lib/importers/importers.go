// Package importers is the data ingestion core: it parses the three source
// formats into the model, merging repeated records and applying the area,
// measure and year filters while importing.
//
// Row-level problems (a malformed value, token or language code) are logged
// and skipped; they never abort a dataset. Configuration, schema and source
// problems abort the current dataset and are returned to the caller.
package importers

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/SamuelNetherway460/Beth-Yw/lib/datasets"
	"github.com/SamuelNetherway460/Beth-Yw/lib/filters"
	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
)

type Importer struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}

	return &Importer{
		log: log,
	}
}

// Populate parses one dataset from the stream into dst, dispatching on the
// source type. The stream is checked for content first; it is consumed fully
// on success and is never closed or retained. Filters may be nil.
func (i *Importer) Populate(
	r io.Reader,
	sourceType datasets.SourceType,
	cols datasets.ColumnMapping,
	dst *model.Areas,
	areasFilter *filters.AreaFilter,
	measuresFilter *filters.MeasureFilter,
	yearsFilter *filters.YearRange,
) error {
	br, err := checkSource(r)
	if err != nil {
		return err
	}

	switch sourceType {
	case datasets.AuthorityCodeCSV:
		return i.populateFromAuthorityCodeCSV(br, cols, dst, areasFilter)

	case datasets.AuthorityByYearCSV:
		return i.populateFromAuthorityByYearCSV(br, cols, dst, areasFilter, measuresFilter, yearsFilter)

	case datasets.StatsWalesJSON:
		return i.populateFromStatsWalesJSON(br, cols, dst, areasFilter, measuresFilter, yearsFilter)

	default:
		return errors.Errorf("unsupported source type: %v", sourceType)
	}
}

// checkSource verifies the stream is readable and has content without
// consuming it, so the chosen importer still reads from the start.
func checkSource(r io.Reader) (*bufio.Reader, error) {
	if r == nil {
		return nil, &SourceError{Msg: "empty or unreadable source"}
	}

	br := bufio.NewReader(r)

	if _, err := br.Peek(1); err != nil {
		if err == io.EOF {
			return nil, &SourceError{Msg: "empty or unreadable source"}
		}
		return nil, &SourceError{Msg: "empty or unreadable source", Cause: err}
	}

	return br, nil
}
