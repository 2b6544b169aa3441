package gallery

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	var r recorder
	d := NewDebouncer(30*time.Millisecond, r.record)

	for _, v := range []string{"c", "ca", "cat", "cats"} {
		d.Trigger(v)
		time.Sleep(5 * time.Millisecond)
	}
	require.True(t, d.Pending())

	require.Eventually(t, func() bool { return len(r.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, []string{"cats"}, r.snapshot())
	require.False(t, d.Pending())
}

func TestDebouncerSeparateBursts(t *testing.T) {
	var r recorder
	d := NewDebouncer(20*time.Millisecond, r.record)

	d.Trigger("first")
	require.Eventually(t, func() bool { return len(r.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	d.Trigger("second")
	require.Eventually(t, func() bool { return len(r.snapshot()) == 2 }, time.Second, 5*time.Millisecond)

	require.Equal(t, []string{"first", "second"}, r.snapshot())
}

func TestDebouncerFlushAndStop(t *testing.T) {
	var r recorder
	d := NewDebouncer(time.Hour, r.record)

	d.Flush()
	require.Empty(t, r.snapshot(), "nothing pending")

	d.Trigger("now")
	d.Flush()
	require.Equal(t, []string{"now"}, r.snapshot())

	d.Trigger("dropped")
	d.Stop()
	require.False(t, d.Pending())
	d.Flush()
	require.Equal(t, []string{"now"}, r.snapshot())
}
