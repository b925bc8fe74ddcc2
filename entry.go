package cali

import (
	"github.com/jinzhu/copier"
)

// DailyEntry holds the nutrition accumulators for a single date.
type DailyEntry struct {
	Date     Date    `json:"-"`
	Calories float64 `json:"calories"`
	Water    float64 `json:"water_fl_oz"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
}

func NewDailyEntry(date Date) *DailyEntry {
	return &DailyEntry{Date: date}
}

func (ent *DailyEntry) clone() DailyEntry {
	var cpEnt DailyEntry
	if err := copier.Copy(&cpEnt, ent); err != nil {
		panic("could not copy daily entry " + err.Error())
	}

	return cpEnt
}

func (ent *DailyEntry) accumulator(m Metric) *float64 {
	switch m {
	case Calories:
		return &ent.Calories
	case Water:
		return &ent.Water
	case Protein:
		return &ent.Protein
	case Carbs:
		return &ent.Carbs
	case Fat:
		return &ent.Fat
	}

	panic("how can a metric be outside of the known set: " + m.String())
}

func (ent *DailyEntry) add(m Metric, amount float64) {
	*ent.accumulator(m) += amount
}

func (ent *DailyEntry) reset() {
	*ent = DailyEntry{Date: ent.Date}
}

func (ent DailyEntry) Value(m Metric) float64 {
	return *ent.accumulator(m)
}

func (ent DailyEntry) IsZero() bool {
	for _, m := range Metrics {
		if ent.Value(m) != 0 {
			return false
		}
	}
	return true
}
