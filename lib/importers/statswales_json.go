package importers

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/SamuelNetherway460/Beth-Yw/lib/datasets"
	"github.com/SamuelNetherway460/Beth-Yw/lib/filters"
	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
)

// populateFromStatsWalesJSON parses a StatsWales export: flat records, one
// (area, measure, year, value) tuple each. Records for the same area or
// measure accumulate through the container's merge-on-insert semantics.
func (i *Importer) populateFromStatsWalesJSON(
	r *bufio.Reader,
	cols datasets.ColumnMapping,
	dst *model.Areas,
	areasFilter *filters.AreaFilter,
	measuresFilter *filters.MeasureFilter,
	yearsFilter *filters.YearRange,
) error {
	codeKey, err := cols.Get(datasets.AuthCode)
	if err != nil {
		return err
	}
	engKey, err := cols.Get(datasets.AuthNameEng)
	if err != nil {
		return err
	}
	yearKey, err := cols.Get(datasets.Year)
	if err != nil {
		return err
	}
	valueKey, err := cols.Get(datasets.Value)
	if err != nil {
		return err
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return &SourceError{Msg: "empty or unreadable source", Cause: err}
	}

	records, err := decodeRecords(buf)
	if err != nil {
		return err
	}

	for _, record := range records {
		code, ok := stringField(record, codeKey)
		if !ok {
			i.log.Warn("skipping record without authority code", "field", codeKey)
			continue
		}

		engName, ok := stringField(record, engKey)
		if !ok {
			i.log.Warn("skipping record without area name", "code", code, "field", engKey)
			continue
		}

		measureCode, err := i.measureCodeFromRecord(cols, record)
		if err != nil {
			i.log.Warn("skipping record", "code", code, "reason", err)
			continue
		}

		measureName, err := i.measureNameFromRecord(cols, record)
		if err != nil {
			i.log.Warn("skipping record", "code", code, "reason", err)
			continue
		}

		year, err := intField(record, yearKey)
		if err != nil {
			i.log.Warn("skipping record with bad year", "code", code, "reason", err)
			continue
		}

		value, err := floatField(record, valueKey)
		if err != nil {
			i.log.Warn("skipping record with bad value", "code", code, "year", year, "reason", err)
			continue
		}

		area := model.NewArea(code)
		if err := area.SetName("eng", engName); err != nil {
			i.log.Warn("ignoring area name", "code", code, "reason", err)
		}

		measure := model.NewMeasure(measureCode, measureName)

		if yearsFilter.Contains(year) {
			measure.SetValue(year, value)
		}

		if measuresFilter.Matches(measure.Code()) {
			area.SetMeasure(measure.Code(), measure)
		}

		if areasFilter.Matches(code, engName) {
			dst.SetArea(code, area)
		}
	}

	return nil
}

// decodeRecords accepts either the StatsWales odata envelope, with the
// records under a top level "value" key, or a bare top level array.
func decodeRecords(buf []byte) ([]map[string]any, error) {
	var envelope struct {
		Value []map[string]any `json:"value"`
	}
	if err := json.Unmarshal(buf, &envelope); err == nil && envelope.Value != nil {
		return envelope.Value, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(buf, &records); err != nil {
		return nil, &SchemaError{Msg: "document is not a StatsWales export: " + err.Error()}
	}

	return records, nil
}

// measureCodeFromRecord reads the per-record measure code, falling back to
// the mapping's single-measure constant when the dataset represents only one
// measure.
func (i *Importer) measureCodeFromRecord(cols datasets.ColumnMapping, record map[string]any) (string, error) {
	if !cols.Has(datasets.MeasureCode) {
		return cols.Get(datasets.SingleMeasureCode)
	}

	key, err := cols.Get(datasets.MeasureCode)
	if err != nil {
		return "", err
	}

	code, ok := stringField(record, key)
	if !ok {
		return "", errors.Errorf("record has no %v field", key)
	}

	return strings.ToLower(code), nil
}

func (i *Importer) measureNameFromRecord(cols datasets.ColumnMapping, record map[string]any) (string, error) {
	if !cols.Has(datasets.MeasureCode) {
		return cols.Get(datasets.SingleMeasureName)
	}

	key, err := cols.Get(datasets.MeasureName)
	if err != nil {
		return "", err
	}

	name, ok := stringField(record, key)
	if !ok {
		return "", errors.Errorf("record has no %v field", key)
	}

	return name, nil
}

func stringField(record map[string]any, key string) (string, bool) {
	v, ok := record[key].(string)
	return v, ok
}

// intField accepts the year as either a JSON number or a numeric string.
func intField(record map[string]any, key string) (int, error) {
	switch v := record[key].(type) {
	case float64:
		return int(v), nil

	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.Errorf("%v is not an integer", v)
		}
		return n, nil

	default:
		return 0, errors.Errorf("missing or non-numeric %v field", key)
	}
}

// floatField accepts the value as either a JSON number or a numeric string.
func floatField(record map[string]any, key string) (float64, error) {
	switch v := record[key].(type) {
	case float64:
		return v, nil

	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.Errorf("%v is not a number", v)
		}
		return f, nil

	default:
		return 0, errors.Errorf("missing or non-numeric %v field", key)
	}
}
