package shell

import (
	"sync"
	"time"
)

// Carousel tracks the visible slide of the homepage hero rotation.
type Carousel struct {
	mu    sync.Mutex
	index int
	count int
}

// NewCarousel returns a carousel over count slides, starting at slide 0.
func NewCarousel(count int) *Carousel {
	if count < 1 {
		count = 1
	}
	return &Carousel{count: count}
}

// Current returns the visible slide index.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Next advances to the following slide, wrapping to the first after the
// last, and returns the new index.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % c.count
	return c.index
}

// AutoAdvance rotates the carousel on a fixed interval. The goroutine is
// fire-and-forget with no cancellation: the carousel lives for the page
// lifetime.
func (c *Carousel) AutoAdvance(interval time.Duration) {
	go func() {
		for range time.Tick(interval) {
			c.Next()
		}
	}()
}
