package cali_test

import (
	"github.com/denismitr/cali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestParseMetric(t *testing.T) {
	tt := []struct {
		in       string
		expected cali.Metric
		field    string
		unit     string
	}{
		{in: "calories", expected: cali.Calories, field: "calories", unit: ""},
		{in: "water", expected: cali.Water, field: "water_fl_oz", unit: "fl oz"},
		{in: "Protein", expected: cali.Protein, field: "protein_g", unit: "g"},
		{in: " carbs ", expected: cali.Carbs, field: "carbs_g", unit: "g"},
		{in: "FAT", expected: cali.Fat, field: "fat_g", unit: "g"},
	}

	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			m, err := cali.ParseMetric(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
			assert.Equal(t, tc.field, m.Field())
			assert.Equal(t, tc.unit, m.Unit())
		})
	}

	for _, in := range []string{"", "sugar", "water_fl_oz", "kcal"} {
		_, err := cali.ParseMetric(in)
		assert.ErrorIs(t, err, cali.ErrUnknownMetric, in)
	}
}

func TestParseAmount(t *testing.T) {
	valid := map[string]float64{
		"150":   150,
		"0":     0,
		"12.75": 12.75,
		" 8 ":   8,
		"1e3":   1000,
	}

	for in, expected := range valid {
		v, err := cali.ParseAmount(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, v, in)
	}

	for _, in := range []string{"", "abc", "-5", "-0.1", "NaN", "Inf", "+Inf", "12g"} {
		_, err := cali.ParseAmount(in)
		assert.ErrorIs(t, err, cali.ErrInvalidAmount, in)
	}
}

func TestParseDate(t *testing.T) {
	d, err := cali.ParseDate("2024-03-07")
	require.NoError(t, err)
	assert.Equal(t, cali.Date("2024-03-07"), d)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), d.Time())

	for _, in := range []string{"", "2024-3-7", "07.03.2024", "2024-13-01", "2023-02-29", "today"} {
		_, err := cali.ParseDate(in)
		assert.ErrorIs(t, err, cali.ErrInvalidDate, in)
	}
}

func TestDateOf(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, 3, 17, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, cali.Date("2024-03-17"), cali.DateOf(instant))
	assert.Equal(t, cali.Date("2024-03-18"), cali.DateOf(instant.In(tokyo)))
	assert.True(t, cali.Date("2023-12-31").Less("2024-01-01"))
}
