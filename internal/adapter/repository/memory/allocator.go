package memory

// numberAllocator decides, for each new account, between reissuing a
// reclaimed number and minting a fresh one. Reclaimed numbers win, smallest
// first. The fresh sequence increments by exactly one per mint and never
// goes backwards; deletions do not touch it.
type numberAllocator struct {
	pool reclaimedPool
	next int
}

func newNumberAllocator(startingNumber int) *numberAllocator {
	return &numberAllocator{next: startingNumber}
}

// allocate never fails. Exactly one of the pool or the fresh counter is
// consumed per call.
func (a *numberAllocator) allocate() int {
	a.pool.sortAscending()
	if number, ok := a.pool.popMin(); ok {
		return number
	}

	number := a.next
	a.next++
	return number
}

// release makes a freed account number eligible for reuse.
func (a *numberAllocator) release(number int) {
	a.pool.add(number)
}
