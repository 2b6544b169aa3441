package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 2)
	b.Subscribe(EventDownloadCompleted, func(e DomainEvent) { got <- e })
	b.Subscribe(EventDownloadCompleted, func(e DomainEvent) { got <- e })

	b.Publish(DownloadCompletedEvent{ID: "a", Path: "/tmp/a.jpg"})

	for i := 0; i < 2; i++ {
		select {
		case e := <-got:
			require.Equal(t, "a", e.(DownloadCompletedEvent).ID)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	b.Subscribe(EventSearchFailed, func(DomainEvent) { calls.Add(1) })
	done := make(chan struct{})
	b.Subscribe(EventSearchCompleted, func(DomainEvent) { close(done) })

	b.Publish(SearchCompletedEvent{Seq: 1})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	require.Equal(t, int32(0), calls.Load())
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	var removed atomic.Int32
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) { removed.Add(1) })
	kept := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { kept <- struct{}{} })

	unsubscribe()
	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-kept:
	case <-time.After(time.Second):
		t.Fatal("remaining handler not called")
	}
	require.Equal(t, int32(0), removed.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	ok := make(chan struct{}, 1)
	b.Subscribe(EventConfigSaved, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(ConfigSavedEvent{Path: "x"})

	select {
	case <-ok:
	case <-time.After(time.Second):
		t.Fatal("bus stopped after handler panic")
	}
}
