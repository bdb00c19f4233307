package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Measure holds the readings of a single statistical measure for one area,
// keyed by year. The codename is normalized to lowercase on construction and
// never changes afterwards.
type Measure struct {
	code     string
	label    string
	readings map[int]float64
}

func NewMeasure(code, label string) *Measure {
	return &Measure{
		code:     strings.ToLower(code),
		label:    label,
		readings: map[int]float64{},
	}
}

func (m *Measure) Code() string {
	return m.code
}

func (m *Measure) Label() string {
	return m.label
}

func (m *Measure) SetLabel(label string) {
	m.label = label
}

// SetValue stores the reading for a year, replacing any existing one.
func (m *Measure) SetValue(year int, value float64) {
	m.readings[year] = value
}

func (m *Measure) GetValue(year int) (float64, error) {
	v, ok := m.readings[year]
	if !ok {
		return 0, errors.Errorf("no value found for year %v", year)
	}

	return v, nil
}

func (m *Measure) Size() int {
	return len(m.readings)
}

// Years returns the years with readings, in ascending order.
func (m *Measure) Years() []int {
	years := lo.Keys(m.readings)
	sort.Ints(years)
	return years
}

// Average returns the mean of all readings, or 0 when there are fewer than
// two of them.
func (m *Measure) Average() float64 {
	if len(m.readings) < 2 {
		return 0
	}

	total := 0.0
	for _, v := range m.readings {
		total += v
	}

	return total / float64(len(m.readings))
}

// Difference returns the change between the earliest and the latest year, or
// 0 when there are fewer than two readings.
func (m *Measure) Difference() float64 {
	if len(m.readings) < 2 {
		return 0
	}

	years := m.Years()
	return m.readings[years[len(years)-1]] - m.readings[years[0]]
}

// DifferenceAsPercentage returns Difference as a percentage of the latest
// year's value, or 0 when there are fewer than two readings.
func (m *Measure) DifferenceAsPercentage() float64 {
	if len(m.readings) < 2 {
		return 0
	}

	years := m.Years()
	last := m.readings[years[len(years)-1]]
	return (last - m.readings[years[0]]) / last * 100
}

// Overwrite merges another Measure into this one: the label is replaced and
// each incoming reading replaces the value for its year. Years only present
// on this side are kept.
func (m *Measure) Overwrite(other *Measure) {
	m.label = other.label
	for year, value := range other.readings {
		m.SetValue(year, value)
	}
}

func (m *Measure) Equal(other *Measure) bool {
	if other == nil {
		return false
	}
	if m.code != other.code || m.label != other.label {
		return false
	}
	if len(m.readings) != len(other.readings) {
		return false
	}

	for year, value := range m.readings {
		if ov, ok := other.readings[year]; !ok || ov != value {
			return false
		}
	}

	return true
}
