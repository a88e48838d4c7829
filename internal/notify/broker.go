// Package notify is the in-process change feed for table mutations.
// Writers publish per-row events; views subscribe per table and re-fetch
// on every delivery, releasing the subscription when the view is left.
package notify

import "sync"

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

type Event struct {
	Table string `json:"table"`
	Op    Op     `json:"op"`
	RowID int64  `json:"row_id"`
}

type Subscription struct {
	C      chan Event
	broker *Broker
	table  string
}

// Close releases the subscription. Safe to call once per subscription;
// the event channel is closed by the broker.
func (s *Subscription) Close() { s.broker.unsubscribe(s) }

type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{} // by table
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[*Subscription]struct{})}
}

func (b *Broker) Subscribe(table string) *Subscription {
	sub := &Subscription{C: make(chan Event, 16), broker: b, table: table}
	b.mu.Lock()
	if b.subs[table] == nil {
		b.subs[table] = make(map[*Subscription]struct{})
	}
	b.subs[table][sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

func (b *Broker) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	if set, ok := b.subs[sub.table]; ok {
		if _, ok := set[sub]; ok {
			delete(set, sub)
			close(sub.C)
		}
	}
	b.mu.Unlock()
}

// Publish fans out to every subscriber of the table. Delivery never
// blocks the writer; a subscriber with a full buffer misses the event
// and catches up on its next re-fetch.
func (b *Broker) Publish(table string, op Op, rowID int64) {
	ev := Event{Table: table, Op: op, RowID: rowID}
	b.mu.RLock()
	for sub := range b.subs[table] {
		select {
		case sub.C <- ev:
		default:
		}
	}
	b.mu.RUnlock()
}
