package importers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamuelNetherway460/Beth-Yw/lib/datasets"
	"github.com/SamuelNetherway460/Beth-Yw/lib/filters"
	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
)

var statswalesCols = datasets.ColumnMapping{
	datasets.AuthCode:    "Localauthority_Code",
	datasets.AuthNameEng: "Localauthority_ItemName_ENG",
	datasets.MeasureCode: "Measure_Code",
	datasets.MeasureName: "Measure_ItemName_ENG",
	datasets.Year:        "Year_Code",
	datasets.Value:       "Data",
}

var singleMeasureCols = datasets.ColumnMapping{
	datasets.AuthCode:          "Area_Code",
	datasets.AuthNameEng:       "Area_ItemName_ENG",
	datasets.SingleMeasureCode: "rail",
	datasets.SingleMeasureName: "Rail passenger journeys",
	datasets.Year:              "Year_Code",
	datasets.Value:             "Data",
}

func importStatsWales(
	t *testing.T,
	doc string,
	cols datasets.ColumnMapping,
	areasFilter *filters.AreaFilter,
	measuresFilter *filters.MeasureFilter,
	yearsFilter *filters.YearRange,
) (*model.Areas, error) {
	t.Helper()

	data := model.NewAreas()
	err := newTestImporter().Populate(strings.NewReader(doc), datasets.StatsWalesJSON, cols,
		data, areasFilter, measuresFilter, yearsFilter)

	return data, err
}

func TestStatsWalesEnvelopeImport(t *testing.T) {
	t.Parallel()

	doc := `{"odata.metadata":"meta","value":[
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":12.5}
	]}`

	data, err := importStatsWales(t, doc, statswalesCols, nil, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, data.Size())

	area, err := data.GetArea("W06000015")
	assert.Nil(t, err)

	name, err := area.GetName("eng")
	assert.Nil(t, err)
	assert.Equal(t, "Cardiff", name)

	m, err := area.GetMeasure("pop")
	assert.Nil(t, err)
	assert.Equal(t, "Population", m.Label())

	v, err := m.GetValue(1999)
	assert.Nil(t, err)
	assert.Equal(t, 12.5, v)
}

func TestStatsWalesBareArrayImport(t *testing.T) {
	t.Parallel()

	doc := `[{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		"Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":1999,"Data":12.5}]`

	data, err := importStatsWales(t, doc, statswalesCols, nil, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, data.Size())
}

func TestStatsWalesStringAndNumberValuesNormalize(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":"12.5"},
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":2001,"Data":12.5}
	]}`

	data, err := importStatsWales(t, doc, statswalesCols, nil, nil, nil)
	assert.Nil(t, err)

	area, _ := data.GetArea("W06000015")
	m, err := area.GetMeasure("pop")
	assert.Nil(t, err)

	a, err := m.GetValue(1999)
	assert.Nil(t, err)
	b, err := m.GetValue(2001)
	assert.Nil(t, err)
	assert.Equal(t, a, b)
}

func TestStatsWalesRecordsAccumulateThroughMerge(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":10},
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"2000","Data":20},
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Dens","Measure_ItemName_ENG":"Density","Year_Code":"1999","Data":1.5}
	]}`

	data, err := importStatsWales(t, doc, statswalesCols, nil, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, data.Size())

	area, _ := data.GetArea("W06000015")
	assert.Equal(t, 2, area.Size())

	m, err := area.GetMeasure("pop")
	assert.Nil(t, err)
	assert.Equal(t, []int{1999, 2000}, m.Years())
}

func TestStatsWalesSingleMeasureFallback(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Area_Code":"W06000015","Area_ItemName_ENG":"Cardiff","Year_Code":"2015","Data":1000}
	]}`

	data, err := importStatsWales(t, doc, singleMeasureCols, nil, nil, nil)
	assert.Nil(t, err)

	area, _ := data.GetArea("W06000015")
	m, err := area.GetMeasure("rail")
	assert.Nil(t, err)
	assert.Equal(t, "Rail passenger journeys", m.Label())
}

func TestStatsWalesYearFilterKeepsMeasureWithoutReading(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":10}
	]}`

	data, err := importStatsWales(t, doc, statswalesCols, nil, nil, filters.NewYearRange(2005, 2010))
	assert.Nil(t, err)

	area, _ := data.GetArea("W06000015")
	m, err := area.GetMeasure("pop")
	assert.Nil(t, err)
	assert.Equal(t, 0, m.Size())
}

func TestStatsWalesMeasureFilterKeepsArea(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":10}
	]}`

	data, err := importStatsWales(t, doc, statswalesCols, nil, filters.NewMeasureFilter("dens"), nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, data.Size())

	area, _ := data.GetArea("W06000015")
	assert.Equal(t, 0, area.Size())
}

func TestStatsWalesAreaFilterMatchesCodeOrEnglishName(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000015","Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":10},
		{"Localauthority_Code":"W06000023","Localauthority_ItemName_ENG":"Powys",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":20}
	]}`

	data, err := importStatsWales(t, doc, statswalesCols, filters.NewAreaFilter("cardiff"), nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, data.Size())

	data, err = importStatsWales(t, doc, statswalesCols, filters.NewAreaFilter("00023"), nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, data.Size())

	_, err = data.GetArea("W06000023")
	assert.Nil(t, err)
}

func TestStatsWalesMalformedRecordIsSkipped(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_ItemName_ENG":"Cardiff",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":10},
		{"Localauthority_Code":"W06000023","Localauthority_ItemName_ENG":"Powys",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"19x9","Data":10},
		{"Localauthority_Code":"W06000023","Localauthority_ItemName_ENG":"Powys",
		 "Measure_Code":"Pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":10}
	]}`

	data, err := importStatsWales(t, doc, statswalesCols, nil, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, data.Size())

	area, _ := data.GetArea("W06000023")
	m, err := area.GetMeasure("pop")
	assert.Nil(t, err)
	assert.Equal(t, []int{1999}, m.Years())
}

func TestStatsWalesInvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := importStatsWales(t, `{"value": 12}`, statswalesCols, nil, nil, nil)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)

	_, err = importStatsWales(t, `not json`, statswalesCols, nil, nil, nil)
	assert.ErrorAs(t, err, &schemaErr)
}
