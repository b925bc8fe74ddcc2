package cali

// EntryReader is the read-only view of a store the aggregation functions need.
type EntryReader interface {
	Lookup(date Date) (DailyEntry, bool)
	Ascend(pivot Date, ir EntryIterator)
	Descend(pivot Date, ir EntryIterator)
}

// TotalsFor returns the entry for date, or a zeroed entry when nothing
// was logged for it.
func TotalsFor(r EntryReader, date Date) DailyEntry {
	ent, _ := r.Lookup(date)
	ent.Date = date
	return ent
}

// AllEntries returns every entry sorted by date, earliest first.
func AllEntries(r EntryReader) []DailyEntry {
	return History(r, nil)
}

func History(r EntryReader, q *queryOptions) []DailyEntry {
	if q == nil {
		q = Q()
	}

	result := make([]DailyEntry, 0)
	collect := func(ent DailyEntry) bool {
		if !q.dateRange.contains(ent.Date) {
			return false
		}

		result = append(result, ent)
		return q.limit == 0 || len(result) < q.limit
	}

	if q.order == Descend {
		r.Descend(q.dateRange.To, collect)
	} else {
		r.Ascend(q.dateRange.From, collect)
	}

	return result
}

// Sum adds up every metric across entries. The result carries no date.
func Sum(entries []DailyEntry) DailyEntry {
	var total DailyEntry
	for i := range entries {
		for _, m := range Metrics {
			total.add(m, entries[i].Value(m))
		}
	}
	return total
}

// Average is the per-day mean of every metric across entries.
func Average(entries []DailyEntry) DailyEntry {
	avg := Sum(entries)
	if len(entries) == 0 {
		return avg
	}

	for _, m := range Metrics {
		*avg.accumulator(m) /= float64(len(entries))
	}
	return avg
}
