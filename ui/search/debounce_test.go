package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type calls struct {
	mu      sync.Mutex
	queries []string
}

func (c *calls) record(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = append(c.queries, query)
}

func (c *calls) get() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.queries...)
}

func TestDebouncer_Trigger(t *testing.T) {
	c := &calls{}
	d := New(c.record, 20*time.Millisecond)
	d.Trigger("a")
	d.Trigger("an")
	d.Trigger("ana")
	assert.Eventually(t, func() bool { return len(c.get()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"ana"}, c.get())
}

func TestDebouncer_Flush(t *testing.T) {
	c := &calls{}
	d := New(c.record, 30*time.Millisecond)
	d.Trigger("bru")
	d.Flush("bruno")
	assert.Equal(t, []string{"bruno"}, c.get())
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"bruno"}, c.get(), "pending call cancelled")
}

func TestDebouncer_Stop(t *testing.T) {
	c := &calls{}
	d := New(c.record, 10*time.Millisecond)
	d.Trigger("x")
	d.Stop()
	d.Trigger("y")
	d.Flush("z")
	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, c.get())
}

func TestNew_DefaultDelay(t *testing.T) {
	d := New(func(string) {}, 0)
	assert.Equal(t, DefaultDelay, d.delay)
}
