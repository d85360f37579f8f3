// Package ebus is a small topic bus for float64 values. Dials subscribe to a
// topic and follow whatever the producers publish on it.
package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

var (
	ErrFull   = errors.New("publish channel full")
	ErrClosed = errors.New("bus closed")
)

type Message struct {
	Topic string
	Value float64
}

type Bus struct {
	mu   sync.Mutex
	subs map[string][]chan float64

	in    chan Message
	unsub chan chan float64
	done  chan struct{}
	once  sync.Once

	// last value per topic, replayed to new subscribers
	cache *ttlcache.Cache[string, float64]

	aggMu       sync.Mutex
	aggregators []*Aggregator

	Verbose bool
}

// New starts a bus that remembers the last value of a topic for ttl.
func New(ttl time.Duration) *Bus {
	b := &Bus{
		subs:  make(map[string][]chan float64),
		in:    make(chan Message, 100),
		unsub: make(chan chan float64, 100),
		done:  make(chan struct{}),
		cache: ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](ttl),
		),
	}
	go b.cache.Start()
	go b.run()
	return b
}

func (b *Bus) run() {
	for {
		select {
		case <-b.done:
			return
		case msg := <-b.in:
			if v := b.cache.Get(msg.Topic); v != nil && v.Value() == msg.Value {
				continue
			}
			b.cache.Set(msg.Topic, msg.Value, ttlcache.DefaultTTL)
			b.mu.Lock()
			for _, sub := range b.subs[msg.Topic] {
				select {
				case sub <- msg.Value:
				default:
				}
			}
			b.mu.Unlock()
			b.aggMu.Lock()
			for _, agg := range b.aggregators {
				agg.fun(b, msg.Topic, msg.Value)
			}
			b.aggMu.Unlock()
		case unsub := <-b.unsub:
			b.remove(unsub)
		}
	}
}

func (b *Bus) remove(unsub chan float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for topic, subz := range b.subs {
		for i, sub := range subz {
			if sub != unsub {
				continue
			}
			if b.Verbose {
				log.Println("Unsubscribe", topic)
			}
			b.subs[topic] = append(subz[:i], subz[i+1:]...)
			close(unsub)
			if len(b.subs[topic]) == 0 {
				delete(b.subs, topic)
			}
			return
		}
	}
}

func (b *Bus) Publish(topic string, value float64) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}
	select {
	case b.in <- Message{Topic: topic, Value: value}:
		return nil
	default:
		return ErrFull
	}
}

// Subscribe returns a channel receiving every new value of topic, starting
// with the cached one if any.
func (b *Bus) Subscribe(topic string) chan float64 {
	if b.Verbose {
		log.Println("Subscribe", topic)
	}
	respChan := make(chan float64, 100)
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], respChan)
	b.mu.Unlock()
	if itm := b.cache.Get(topic); itm != nil {
		respChan <- itm.Value()
	}
	return respChan
}

// SubscribeFunc calls f for each value of topic until the returned function is called.
func (b *Bus) SubscribeFunc(topic string, f func(float64)) func() {
	respChan := b.Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		b.Unsubscribe(respChan)
	}
}

func (b *Bus) Unsubscribe(channel chan float64) {
	select {
	case b.unsub <- channel:
	case <-b.done:
	}
}

// Last returns the cached value of topic.
func (b *Bus) Last(topic string) (float64, bool) {
	if itm := b.cache.Get(topic); itm != nil {
		return itm.Value(), true
	}
	return 0, false
}

// Close stops the bus and closes every subscription.
func (b *Bus) Close() {
	b.once.Do(func() {
		close(b.done)
		b.cache.Stop()
		b.mu.Lock()
		for topic, subz := range b.subs {
			for _, sub := range subz {
				close(sub)
			}
			delete(b.subs, topic)
		}
		b.mu.Unlock()
	})
}

var (
	defaultOnce sync.Once
	defaultBus  *Bus
)

// Default is the process wide bus used by the package level functions.
func Default() *Bus {
	defaultOnce.Do(func() {
		defaultBus = New(1 * time.Minute)
	})
	return defaultBus
}

func Publish(topic string, value float64) error { return Default().Publish(topic, value) }

func Subscribe(topic string) chan float64 { return Default().Subscribe(topic) }

func SubscribeFunc(topic string, f func(float64)) func() {
	return Default().SubscribeFunc(topic, f)
}

func Unsubscribe(channel chan float64) { Default().Unsubscribe(channel) }
