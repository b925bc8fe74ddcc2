package cali

type Order string

const (
	Ascend  Order = "ASC"
	Descend Order = "DESC"
)

// DateRange is inclusive on both ends. An empty bound is open.
type DateRange struct {
	From, To Date
}

func (dr DateRange) contains(d Date) bool {
	if dr.From != "" && d.Less(dr.From) {
		return false
	}

	if dr.To != "" && dr.To.Less(d) {
		return false
	}

	return true
}

type queryOptions struct {
	order     Order
	dateRange DateRange
	limit     int
}

func (q *queryOptions) Order(o Order) *queryOptions {
	q.order = o
	return q
}

func (q *queryOptions) Between(from, to Date) *queryOptions {
	q.dateRange = DateRange{From: from, To: to}
	return q
}

func (q *queryOptions) Since(from Date) *queryOptions {
	q.dateRange.From = from
	return q
}

func (q *queryOptions) Until(to Date) *queryOptions {
	q.dateRange.To = to
	return q
}

// Limit caps the number of entries returned; zero means no limit.
func (q *queryOptions) Limit(n int) *queryOptions {
	if n < 0 {
		n = 0
	}
	q.limit = n
	return q
}

func Q() *queryOptions {
	return &queryOptions{order: Ascend}
}
