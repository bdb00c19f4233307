package model

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Areas is the top level container: all imported Area objects keyed by local
// authority code. It is populated by the importers and read-only afterwards.
type Areas struct {
	areas map[string]*Area
}

func NewAreas() *Areas {
	return &Areas{
		areas: map[string]*Area{},
	}
}

// SetArea adds an Area to the container. If an Area already exists with the
// same local authority code the two are combined, with the incoming Area's
// data taking precedence.
func (as *Areas) SetArea(code string, area *Area) {
	if existing, ok := as.areas[code]; ok {
		existing.Overwrite(area)
	} else {
		as.areas[code] = area
	}
}

func (as *Areas) GetArea(code string) (*Area, error) {
	area, ok := as.areas[code]
	if !ok {
		return nil, errors.Errorf("no area found matching %v", code)
	}

	return area, nil
}

func (as *Areas) Size() int {
	return len(as.areas)
}

// ListAreas returns all areas ordered by local authority code.
func (as *Areas) ListAreas() []*Area {
	result := lo.Values(as.areas)

	sort.Slice(result, func(i, j int) bool {
		return result[i].code < result[j].code
	})

	return result
}

type jsonMeasure struct {
	Label    string             `json:"label"`
	Readings map[string]float64 `json:"readings"`
}

type jsonArea struct {
	Names    map[string]string      `json:"names"`
	Measures map[string]jsonMeasure `json:"measures,omitempty"`
}

// ToJSON serializes the whole container. Each area becomes an object keyed by
// its authority code with a names object and, only when non-empty, a measures
// object. An empty container serializes to {}.
func (as *Areas) ToJSON() (string, error) {
	doc := map[string]jsonArea{}

	for code, area := range as.areas {
		ja := jsonArea{
			Names: area.Names(),
		}

		if len(area.measures) > 0 {
			ja.Measures = map[string]jsonMeasure{}

			for mc, measure := range area.measures {
				readings := map[string]float64{}
				for year, value := range measure.readings {
					readings[strconv.Itoa(year)] = value
				}

				ja.Measures[mc] = jsonMeasure{
					Label:    measure.label,
					Readings: readings,
				}
			}
		}

		doc[code] = ja
	}

	result, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "error serializing areas")
	}

	return string(result), nil
}
