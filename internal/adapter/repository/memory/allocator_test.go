package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateFreshSequence(t *testing.T) {
	a := newNumberAllocator(100)

	assert.Equal(t, 100, a.allocate())
	assert.Equal(t, 101, a.allocate())
	assert.Equal(t, 102, a.allocate())
	assert.Equal(t, 103, a.next, "fresh counter must advance by one per mint")
}

func TestAllocatePrefersSmallestReclaimed(t *testing.T) {
	a := newNumberAllocator(100)
	for i := 0; i < 4; i++ {
		a.allocate()
	}

	a.release(102)
	a.release(100)
	a.release(101)

	assert.Equal(t, 100, a.allocate())
	assert.Equal(t, 101, a.allocate())
	assert.Equal(t, 102, a.allocate())
	assert.Equal(t, 104, a.allocate(), "drained pool must resume the fresh sequence")
}

func TestReleaseDoesNotTouchFreshCounter(t *testing.T) {
	a := newNumberAllocator(100)
	a.allocate()

	a.release(100)
	assert.Equal(t, 101, a.next)

	assert.Equal(t, 100, a.allocate())
	assert.Equal(t, 101, a.next, "reissuing a reclaimed number must not advance the counter")
}

func TestPoolKeepsArrivalOrderUntilSorted(t *testing.T) {
	p := &reclaimedPool{}
	p.add(105)
	p.add(101)
	p.add(103)

	assert.Equal(t, []int{105, 101, 103}, p.numbers, "additions keep arrival order")

	p.sortAscending()
	assert.Equal(t, []int{101, 103, 105}, p.numbers)

	number, ok := p.popMin()
	assert.True(t, ok)
	assert.Equal(t, 101, number)
	assert.Equal(t, 2, p.size())
}

func TestPopMinEmptyPool(t *testing.T) {
	p := &reclaimedPool{}

	_, ok := p.popMin()
	assert.False(t, ok)
}
