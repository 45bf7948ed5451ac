package domain

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	idSuffixLen  = 9
	idSuffixChar = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// uuidRandomBytes are the byte offsets of a v4 UUID that carry no version or
// variant bits.
var uuidRandomBytes = [idSuffixLen]int{0, 1, 2, 3, 4, 5, 9, 10, 11}

// IDSource hands out plan ids.
type IDSource interface {
	NewID() string
}

// IDGenerator produces ids of the form <unix millis><9 random [a-z0-9]>.
// Two ids from the same generator never share a millisecond prefix. When
// the clock has not advanced since the previous id NewID waits one
// millisecond; if the clock went backwards it continues from the previous
// prefix instead of waiting.
type IDGenerator struct {
	mu    sync.Mutex
	now   func() time.Time
	sleep func(time.Duration)
	last  int64
}

// NewIDGenerator returns a generator backed by the wall clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now, sleep: time.Sleep}
}

// NewIDGeneratorWithClock returns a generator driven by the given clock.
// sleep is called whenever the generator has to wait for now to advance.
func NewIDGeneratorWithClock(now func() time.Time, sleep func(time.Duration)) *IDGenerator {
	return &IDGenerator{now: now, sleep: sleep}
}

func (g *IDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms == g.last {
		g.sleep(time.Millisecond)
		ms = g.now().UnixMilli()
	}
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return strconv.FormatInt(ms, 10) + randomSuffix()
}

func randomSuffix() string {
	u := uuid.New()
	b := make([]byte, idSuffixLen)
	for i, off := range uuidRandomBytes {
		b[i] = idSuffixChar[int(u[off])%len(idSuffixChar)]
	}
	return string(b)
}
