package services

import "sync"

// investorLocks serializes ledger authoring per investor inside this process.
// Appends for different investors never contend.
type investorLocks struct {
	mapMu sync.Mutex
	muMap map[string]*sync.Mutex
}

func newInvestorLocks() *investorLocks {
	return &investorLocks{muMap: make(map[string]*sync.Mutex)}
}

func (l *investorLocks) get(investorID string) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	if _, exists := l.muMap[investorID]; !exists {
		l.muMap[investorID] = &sync.Mutex{}
	}
	return l.muMap[investorID]
}

// lock acquires the investor's mutex and returns its release func.
func (l *investorLocks) lock(investorID string) func() {
	mu := l.get(investorID)
	mu.Lock()
	return mu.Unlock
}
