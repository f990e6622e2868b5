package discovery

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerFiresAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var fired int32

	d.Trigger(func() { atomic.AddInt32(&fired, 1) })

	// not yet: the quiet period has not elapsed
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)
	var fired int32

	// a burst of triggers inside the quiet period fires once
	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&fired, 1) })
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var fired int32

	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestDebouncerDefaultPeriod(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultQuietPeriod, d.period)
}

func TestTokenGate(t *testing.T) {
	var g TokenGate

	first := g.Next()
	second := g.Next()

	// the superseded request's response is dropped
	assert.False(t, g.Accept(first))
	assert.True(t, g.Accept(second))

	// issuing a new token invalidates the previous latest
	third := g.Next()
	assert.False(t, g.Accept(second))
	assert.True(t, g.Accept(third))
}
