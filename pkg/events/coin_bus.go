// pkg/events/coin_bus.go
package events

import "sync"

// CoinEvent is published whenever the ledger is credited:
// once per photo check-in and once for the completion bonus.
type CoinEvent struct {
	Amount int `json:"amount"`
}

type CoinBus interface {
	// Subscribe returns a receive channel plus a cancel func
	// that must be called when the listener goes away.
	Subscribe() (<-chan CoinEvent, func())

	// Publish never blocks; a slow subscriber misses events
	// rather than stalling the state mutation that produced them.
	Publish(ev CoinEvent)
}

type coinBus struct {
	mu   sync.RWMutex
	subs map[int]chan CoinEvent
	next int
}

func NewCoinBus() CoinBus {
	return &coinBus{subs: make(map[int]chan CoinEvent)}
}

func (b *coinBus) Subscribe() (<-chan CoinEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan CoinEvent, 8)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if ch, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (b *coinBus) Publish(ev CoinEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
