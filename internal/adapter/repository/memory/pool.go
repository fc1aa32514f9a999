package memory

import "sort"

// reclaimedPool collects account numbers freed by deletion. Additions append
// in arrival order; the pool is sorted ascending immediately before any
// consuming allocation, so the head is the smallest number at that point
// (sort-on-read rather than sorted-on-write).
type reclaimedPool struct {
	numbers []int
}

func (p *reclaimedPool) add(number int) {
	p.numbers = append(p.numbers, number)
}

// sortAscending is a no-op for 0 or 1 entries.
func (p *reclaimedPool) sortAscending() {
	if len(p.numbers) < 2 {
		return
	}
	sort.Ints(p.numbers)
}

// popMin removes and returns the head entry; callers sort first. The second
// return is false when the pool is empty.
func (p *reclaimedPool) popMin() (int, bool) {
	if len(p.numbers) == 0 {
		return 0, false
	}
	number := p.numbers[0]
	p.numbers = p.numbers[1:]
	return number, true
}

func (p *reclaimedPool) size() int {
	return len(p.numbers)
}
