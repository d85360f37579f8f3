package ebus

import (
	"log"
	"math"
)

type AggregatorFunc func(b *Bus, topic string, value float64)

// Aggregator derives new topics from published values. It runs on the bus
// goroutine and must not block.
type Aggregator struct {
	fun AggregatorFunc
}

func NewAggregator(f AggregatorFunc) *Aggregator {
	return &Aggregator{fun: f}
}

func (b *Bus) RegisterAggregator(aggs ...*Aggregator) {
	b.aggMu.Lock()
	defer b.aggMu.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range b.aggregators {
			if existing == agg {
				continue outer
			}
		}
		b.aggregators = append(b.aggregators, agg)
	}
}

// ConvertAggregator republishes values of src on dst through conv.
func ConvertAggregator(src, dst string, conv func(float64) float64) *Aggregator {
	return NewAggregator(func(b *Bus, topic string, value float64) {
		if topic != src {
			return
		}
		if err := b.Publish(dst, conv(value)); err != nil && b.Verbose {
			log.Printf("aggregate %s -> %s: %v", src, dst, err)
		}
	})
}

// DegreesToRadians publishes src (degrees) on dst in radians.
func DegreesToRadians(src, dst string) *Aggregator {
	return ConvertAggregator(src, dst, func(v float64) float64 {
		return v * math.Pi / 180
	})
}

// PercentOfTurn publishes src (degrees) on dst as a percentage of a full turn.
func PercentOfTurn(src, dst string) *Aggregator {
	return ConvertAggregator(src, dst, func(v float64) float64 {
		return v / 360 * 100
	})
}
