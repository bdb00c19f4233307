// Package datasets holds the static configuration for the known data sources:
// which file shape each one has and which logical fields map to which column
// headers or JSON keys.
package datasets

import (
	"github.com/pkg/errors"
)

type SourceType int

const (
	AuthorityCodeCSV SourceType = iota
	AuthorityByYearCSV
	StatsWalesJSON
)

func (t SourceType) String() string {
	switch t {
	case AuthorityCodeCSV:
		return "authority code CSV"
	case AuthorityByYearCSV:
		return "authority by year CSV"
	case StatsWalesJSON:
		return "StatsWales JSON"
	default:
		return "unknown"
	}
}

// Column identifies a logical field of a source record, independent of the
// physical header or JSON key it is stored under.
type Column int

const (
	AuthCode Column = iota
	AuthNameEng
	AuthNameCym
	MeasureCode
	MeasureName
	// SingleMeasureCode and SingleMeasureName are constants of the mapping,
	// not per-record fields: they name the one measure a whole single-measure
	// dataset represents.
	SingleMeasureCode
	SingleMeasureName
	Year
	Value
)

func (c Column) String() string {
	switch c {
	case AuthCode:
		return "authority code"
	case AuthNameEng:
		return "authority name (eng)"
	case AuthNameCym:
		return "authority name (cym)"
	case MeasureCode:
		return "measure code"
	case MeasureName:
		return "measure name"
	case SingleMeasureCode:
		return "single measure code"
	case SingleMeasureName:
		return "single measure name"
	case Year:
		return "year"
	case Value:
		return "value"
	default:
		return "unknown"
	}
}

// MissingColumnError means the column mapping for a dataset does not declare
// a logical field the invoked importer requires. It is a configuration
// problem, not a data problem.
type MissingColumnError struct {
	Column Column
}

func (e *MissingColumnError) Error() string {
	return "column mapping is missing the " + e.Column.String() + " column"
}

// ColumnMapping associates logical fields with the physical column headers or
// JSON keys of one dataset.
type ColumnMapping map[Column]string

func (m ColumnMapping) Get(col Column) (string, error) {
	v, ok := m[col]
	if !ok {
		return "", &MissingColumnError{Column: col}
	}

	return v, nil
}

func (m ColumnMapping) Has(col Column) bool {
	_, ok := m[col]
	return ok
}

// Dataset describes one known source file.
type Dataset struct {
	Code string
	Name string
	File string
	Type SourceType
	Cols ColumnMapping
}

var all = []Dataset{
	{
		Code: "areas",
		Name: "Areas",
		File: "areas.csv",
		Type: AuthorityCodeCSV,
		Cols: ColumnMapping{
			AuthCode:    "Local authority code",
			AuthNameEng: "Name (eng)",
			AuthNameCym: "Name (cym)",
		},
	},
	{
		Code: "popden",
		Name: "Population density",
		File: "popu1009.json",
		Type: StatsWalesJSON,
		Cols: ColumnMapping{
			AuthCode:    "Localauthority_Code",
			AuthNameEng: "Localauthority_ItemName_ENG",
			MeasureCode: "Measure_Code",
			MeasureName: "Measure_ItemName_ENG",
			Year:        "Year_Code",
			Value:       "Data",
		},
	},
	{
		Code: "biz",
		Name: "Active businesses",
		File: "econ0080.json",
		Type: StatsWalesJSON,
		Cols: ColumnMapping{
			AuthCode:    "Area_Code",
			AuthNameEng: "Area_ItemName_ENG",
			MeasureCode: "Variable_Code",
			MeasureName: "Variable_ItemName_ENG",
			Year:        "Year_Code",
			Value:       "Data",
		},
	},
	{
		Code: "aqi",
		Name: "Air quality indicators",
		File: "envi0201.json",
		Type: StatsWalesJSON,
		Cols: ColumnMapping{
			AuthCode:          "Area_Code",
			AuthNameEng:       "Area_ItemName_ENG",
			SingleMeasureCode: "PM2-5",
			SingleMeasureName: "Rural background PM2-5",
			Year:              "Year_Code",
			Value:             "Data",
		},
	},
	{
		Code: "trains",
		Name: "Rail passenger journeys",
		File: "tran0152.json",
		Type: StatsWalesJSON,
		Cols: ColumnMapping{
			AuthCode:          "Area_Code",
			AuthNameEng:       "Area_ItemName_ENG",
			SingleMeasureCode: "rail",
			SingleMeasureName: "Rail passenger journeys",
			Year:              "Year_Code",
			Value:             "Data",
		},
	},
	{
		Code: "complete-popden",
		Name: "Complete population density",
		File: "complete-popu1009-popden.csv",
		Type: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "Dens",
			SingleMeasureName: "Population density",
		},
	},
	{
		Code: "complete-pop",
		Name: "Complete population",
		File: "complete-popu1009-pop.csv",
		Type: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "Pop",
			SingleMeasureName: "Population",
		},
	},
	{
		Code: "complete-area",
		Name: "Complete land area",
		File: "complete-popu1009-area.csv",
		Type: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "Area",
			SingleMeasureName: "Land area",
		},
	},
}

// All returns the registry of known datasets, the area registry first.
func All() []Dataset {
	result := make([]Dataset, len(all))
	copy(result, all)
	return result
}

// Registry returns the dataset holding the local authority code directory.
func Registry() Dataset {
	return all[0]
}

func errNoDataset(code string) error {
	return errors.Errorf("no dataset matches key: %v", code)
}
