package model

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
)

var langRE = regexp.MustCompile(`^[a-z]{3}$`)

// Area is one local authority: its unique authority code, its names in any
// number of languages, and its measures keyed by codename.
type Area struct {
	code     string
	names    map[string]string
	measures map[string]*Measure
}

func NewArea(localAuthorityCode string) *Area {
	return &Area{
		code:     localAuthorityCode,
		names:    map[string]string{},
		measures: map[string]*Measure{},
	}
}

func (a *Area) LocalAuthorityCode() string {
	return a.code
}

// SetName stores the area name for a language. The language code must be
// exactly three alphabetic characters and is stored lowercase.
func (a *Area) SetName(lang, name string) error {
	lang = strings.ToLower(lang)
	if !langRE.MatchString(lang) {
		return errors.Errorf("language code must be three alphabetical letters, got %v", lang)
	}

	a.names[lang] = name
	return nil
}

func (a *Area) GetName(lang string) (string, error) {
	name, ok := a.names[strings.ToLower(lang)]
	if !ok {
		return "", errors.Errorf("no name in language %v", lang)
	}

	return name, nil
}

func (a *Area) Names() map[string]string {
	return maps.Clone(a.names)
}

func (a *Area) NameCount() int {
	return len(a.names)
}

// SetMeasure adds a Measure under its lowercase codename. An existing Measure
// with the same codename is merged via Overwrite instead of being replaced.
func (a *Area) SetMeasure(code string, measure *Measure) {
	code = strings.ToLower(code)

	if existing, ok := a.measures[code]; ok {
		existing.Overwrite(measure)
	} else {
		a.measures[code] = measure
	}
}

func (a *Area) GetMeasure(code string) (*Measure, error) {
	m, ok := a.measures[strings.ToLower(code)]
	if !ok {
		return nil, errors.Errorf("no measure found matching %v", code)
	}

	return m, nil
}

func (a *Area) Size() int {
	return len(a.measures)
}

// ListMeasures returns the measures ordered by codename.
func (a *Area) ListMeasures() []*Measure {
	result := lo.Values(a.measures)

	sort.Slice(result, func(i, j int) bool {
		return result[i].code < result[j].code
	})

	return result
}

// Overwrite merges another Area into this one field by field: each incoming
// name and measure is applied on top of the existing ones, anything not
// present on the incoming side is left untouched.
func (a *Area) Overwrite(other *Area) {
	for lang, name := range other.names {
		a.names[lang] = name
	}

	for code, measure := range other.measures {
		a.SetMeasure(code, measure)
	}
}

func (a *Area) Equal(other *Area) bool {
	if other == nil {
		return false
	}
	if a.code != other.code {
		return false
	}
	if !maps.Equal(a.names, other.names) {
		return false
	}
	if len(a.measures) != len(other.measures) {
		return false
	}

	for code, measure := range a.measures {
		if !measure.Equal(other.measures[code]) {
			return false
		}
	}

	return true
}
