package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnMappingGet(t *testing.T) {
	t.Parallel()

	cols := ColumnMapping{AuthCode: "Local authority code"}

	v, err := cols.Get(AuthCode)
	assert.Nil(t, err)
	assert.Equal(t, "Local authority code", v)

	_, err = cols.Get(Value)
	assert.Error(t, err)

	var missing *MissingColumnError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, Value, missing.Column)
}

func TestSelectDefaultsToAllDatasets(t *testing.T) {
	t.Parallel()

	ds, err := Select(nil)
	assert.Nil(t, err)
	assert.Len(t, ds, 7)

	for _, d := range ds {
		assert.NotEqual(t, AuthorityCodeCSV, d.Type)
	}
}

func TestSelectAllKeyword(t *testing.T) {
	t.Parallel()

	ds, err := Select([]string{"popden", "ALL"})
	assert.Nil(t, err)
	assert.Len(t, ds, 7)
}

func TestSelectByCode(t *testing.T) {
	t.Parallel()

	ds, err := Select([]string{"Popden", "trains"})
	assert.Nil(t, err)
	assert.Len(t, ds, 2)
	assert.Equal(t, "popden", ds[0].Code)
	assert.Equal(t, "trains", ds[1].Code)
}

func TestSelectGlobPattern(t *testing.T) {
	t.Parallel()

	ds, err := Select([]string{"complete-*"})
	assert.Nil(t, err)
	assert.Len(t, ds, 3)
}

func TestSelectDeduplicates(t *testing.T) {
	t.Parallel()

	ds, err := Select([]string{"complete-pop", "complete-*"})
	assert.Nil(t, err)
	assert.Len(t, ds, 3)
	assert.Equal(t, "complete-pop", ds[0].Code)
}

func TestSelectUnknownCode(t *testing.T) {
	t.Parallel()

	_, err := Select([]string{"nope"})
	assert.EqualError(t, err, "no dataset matches key: nope")
}

func TestRegistryIsTheAreaDirectory(t *testing.T) {
	t.Parallel()

	r := Registry()
	assert.Equal(t, AuthorityCodeCSV, r.Type)
	assert.Equal(t, "areas.csv", r.File)
}
