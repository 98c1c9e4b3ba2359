// Package event broadcasts dispatch activity, such as requested check
// executions and operations, to interested stream subscribers.
package event

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
)

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string]chan Event),
	}
}

type Event struct {
	Type    string
	Message string
}

type Broker struct {
	subscribers map[string]chan Event
	lock        sync.Mutex
}

// Subscribe registers a new subscriber and returns its id and channel. The
// channel is buffered, a slow subscriber drops events rather than blocking
// the dispatch path.
func (b *Broker) Subscribe() (string, <-chan Event) {
	b.lock.Lock()
	defer b.lock.Unlock()

	id := uuid.NewString()
	channel := make(chan Event, 16)
	b.subscribers[id] = channel
	return id, channel
}

func (b *Broker) Unsubscribe(id string) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if channel, ok := b.subscribers[id]; ok {
		close(channel)
		delete(b.subscribers, id)
	}
}

func (b *Broker) Subscribers() []string {
	b.lock.Lock()
	defer b.lock.Unlock()

	return maps.Keys(b.subscribers)
}

// Broadcast delivers the event to every subscriber that can keep up.
func (b *Broker) Broadcast(event Event) {
	b.lock.Lock()
	defer b.lock.Unlock()

	for _, channel := range b.subscribers {
		select {
		case channel <- event:
		default:
		}
	}
}
