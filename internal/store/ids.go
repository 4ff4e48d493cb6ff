package store

// IDAllocator hands out integer ids for one collection. It starts after the
// highest id it has observed and never moves backwards, so an id freed by a
// delete is not handed out again in the same session.
type IDAllocator struct {
	last int
}

// Observe records id as used.
func (a *IDAllocator) Observe(id int) {
	if id > a.last {
		a.last = id
	}
}

// Next returns the id the next record will get. It does not reserve it;
// call Observe once the record is committed.
func (a *IDAllocator) Next() int {
	return a.last + 1
}

// Last returns the highest id observed so far, or 0.
func (a *IDAllocator) Last() int {
	return a.last
}
