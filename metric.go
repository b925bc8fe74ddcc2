package cali

import (
	"github.com/pkg/errors"
	"strings"
)

type Metric int8

const (
	Calories Metric = iota
	Water
	Protein
	Carbs
	Fat
)

// Metrics lists every tracked metric in display order.
var Metrics = []Metric{Calories, Water, Protein, Carbs, Fat}

var metricNames = map[Metric]string{
	Calories: "calories",
	Water:    "water",
	Protein:  "protein",
	Carbs:    "carbs",
	Fat:      "fat",
}

var metricFields = map[Metric]string{
	Calories: "calories",
	Water:    "water_fl_oz",
	Protein:  "protein_g",
	Carbs:    "carbs_g",
	Fat:      "fat_g",
}

var metricUnits = map[Metric]string{
	Calories: "",
	Water:    "fl oz",
	Protein:  "g",
	Carbs:    "g",
	Fat:      "g",
}

func ParseMetric(name string) (Metric, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Metrics {
		if metricNames[m] == n {
			return m, nil
		}
	}

	return 0, errors.Wrapf(
		ErrUnknownMetric,
		"%q, expected one of %s",
		name, strings.Join(MetricNames(), ", "),
	)
}

func MetricNames() []string {
	names := make([]string, 0, len(Metrics))
	for _, m := range Metrics {
		names = append(names, m.String())
	}
	return names
}

func (m Metric) String() string {
	if n, ok := metricNames[m]; ok {
		return n
	}
	return "unknown"
}

// Field is the key under which the metric is persisted.
func (m Metric) Field() string {
	return metricFields[m]
}

func (m Metric) Unit() string {
	return metricUnits[m]
}
