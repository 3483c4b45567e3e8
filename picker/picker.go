package picker

import (
	"sync"

	"code.cloudfoundry.org/tenantrouter/models"
)

// RoundRobin picks destinations in sorted ID order, advancing one slot per
// call. Selection state lives in the picker instance, so the cycle is only
// deterministic for repeated calls with the same candidate set.
type RoundRobin struct {
	mutex sync.Mutex
	next  uint64
}

func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Pick returns one destination from the set, or false when the set is empty.
func (p *RoundRobin) Pick(candidates models.CandidateSet) (models.Destination, bool) {
	if len(candidates) == 0 {
		return models.Destination{}, false
	}

	ids := candidates.IDs()

	p.mutex.Lock()
	index := p.next % uint64(len(ids))
	p.next++
	p.mutex.Unlock()

	return candidates[ids[index]], true
}
