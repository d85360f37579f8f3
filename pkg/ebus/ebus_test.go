package ebus_test

import (
	"bytes"
	"errors"
	"log"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/roffe/uidial/pkg/ebus"
)

func recv(t *testing.T, ch <-chan float64) float64 {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for value")
		return 0
	}
}

func TestPublish(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		data    float64
		wantErr bool
	}{
		{
			name:  "test",
			topic: "test",
			data:  1.23,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr := ebus.Publish(tt.topic, tt.data)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("Publish() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Publish() succeeded unexpectedly")
			}
		})
	}
}

func TestSubscribe(t *testing.T) {
	b := ebus.New(time.Minute)
	defer b.Close()

	ch := b.Subscribe("decimal")
	if ch == nil {
		t.Fatal("Subscribe() returned nil channel")
	}
	if err := b.Publish("decimal", 3.14); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}
	if v := recv(t, ch); v != 3.14 {
		t.Errorf("Subscribe() got %v, want 3.14", v)
	}
	b.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Error("channel still open after Unsubscribe")
	}
}

func TestSubscribeReplaysLastValue(t *testing.T) {
	b := ebus.New(time.Minute)
	defer b.Close()

	first := b.Subscribe("degrees")
	b.Publish("degrees", 90)
	recv(t, first)

	late := b.Subscribe("degrees")
	if v := recv(t, late); v != 90 {
		t.Errorf("late subscriber got %v, want 90", v)
	}
	if v, ok := b.Last("degrees"); !ok || v != 90 {
		t.Errorf("Last() = %v %v", v, ok)
	}
}

func TestDuplicateValuesDropped(t *testing.T) {
	b := ebus.New(time.Minute)
	defer b.Close()

	ch := b.Subscribe("dup")
	b.Publish("dup", 1)
	b.Publish("dup", 1)
	b.Publish("dup", 2)
	if v := recv(t, ch); v != 1 {
		t.Fatalf("got %v, want 1", v)
	}
	if v := recv(t, ch); v != 2 {
		t.Errorf("got %v, want 2 (duplicate not dropped)", v)
	}
}

func TestSubscribeFunc(t *testing.T) {
	b := ebus.New(time.Minute)
	defer b.Close()

	got := make(chan float64, 1)
	cleanup := b.SubscribeFunc("func", func(v float64) { got <- v })
	if cleanup == nil {
		t.Fatal("SubscribeFunc() returned nil cleanup function")
	}
	b.Publish("func", 2.71)
	if v := recv(t, got); v != 2.71 {
		t.Errorf("SubscribeFunc() got %v, want 2.71", v)
	}
	cleanup()
}

func TestAggregators(t *testing.T) {
	b := ebus.New(time.Minute)
	defer b.Close()

	agg := ebus.DegreesToRadians("deg", "rad")
	b.RegisterAggregator(agg, agg, ebus.PercentOfTurn("deg", "pct"))

	rad := b.Subscribe("rad")
	pct := b.Subscribe("pct")
	b.Publish("deg", 180)
	if v := recv(t, rad); math.Abs(v-math.Pi) > 1e-12 {
		t.Errorf("rad = %v, want π", v)
	}
	if v := recv(t, pct); v != 50 {
		t.Errorf("pct = %v, want 50", v)
	}
}

func TestAggregatorLogsDroppedValue(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	b := ebus.New(time.Minute)
	b.Verbose = true
	done := make(chan struct{})
	b.RegisterAggregator(
		ebus.NewAggregator(func(b *ebus.Bus, topic string, value float64) { b.Close() }),
		ebus.DegreesToRadians("deg", "rad"),
		ebus.NewAggregator(func(b *ebus.Bus, topic string, value float64) { close(done) }),
	)
	if err := b.Publish("deg", 90); err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("aggregators did not run")
	}
	if got := buf.String(); !strings.Contains(got, "deg -> rad") || !strings.Contains(got, ebus.ErrClosed.Error()) {
		t.Errorf("log = %q, want dropped deg -> rad value", got)
	}
}

func TestClose(t *testing.T) {
	b := ebus.New(time.Minute)
	ch := b.Subscribe("closed")
	b.Close()
	b.Close()
	if _, ok := <-ch; ok {
		t.Error("subscription not closed")
	}
	if err := b.Publish("closed", 1); !errors.Is(err, ebus.ErrClosed) {
		t.Errorf("Publish() after Close = %v, want ErrClosed", err)
	}
	b.Unsubscribe(ch) // must not block
}
