package importers

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"

	"github.com/SamuelNetherway460/Beth-Yw/lib/datasets"
	"github.com/SamuelNetherway460/Beth-Yw/lib/filters"
	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
)

// populateFromAuthorityCodeCSV parses the local authority code directory: a
// 3 column CSV of authority code plus the English and Welsh names, one area
// per row.
func (i *Importer) populateFromAuthorityCodeCSV(
	r *bufio.Reader,
	cols datasets.ColumnMapping,
	dst *model.Areas,
	areasFilter *filters.AreaFilter,
) error {
	codeCol, err := cols.Get(datasets.AuthCode)
	if err != nil {
		return err
	}
	engCol, err := cols.Get(datasets.AuthNameEng)
	if err != nil {
		return err
	}
	cymCol, err := cols.Get(datasets.AuthNameCym)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return &SourceError{Msg: "empty or unreadable source", Cause: scanner.Err()}
	}

	header := strings.Split(scanner.Text(), ",")
	if len(header) != 3 {
		return &SchemaError{Msg: "incorrect number of columns in header"}
	}
	if header[0] != codeCol || header[1] != engCol || header[2] != cymCol {
		return &SchemaError{Msg: "incorrect column names in header"}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		tokens := strings.Split(line, ",")
		if len(tokens) != 3 {
			i.log.Warn("skipping malformed row", "row", line)
			continue
		}

		if !areasFilter.Matches(tokens[0], tokens[1], tokens[2]) {
			continue
		}

		area := model.NewArea(tokens[0])
		if err := area.SetName("eng", tokens[1]); err != nil {
			i.log.Warn("skipping row", "code", tokens[0], "reason", err)
			continue
		}
		if err := area.SetName("cym", tokens[2]); err != nil {
			i.log.Warn("skipping row", "code", tokens[0], "reason", err)
			continue
		}

		dst.SetArea(tokens[0], area)
	}

	return errors.Wrap(scanner.Err(), "error reading source")
}
