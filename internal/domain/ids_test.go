package domain

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^[0-9]+[a-z0-9]{9}$`)

func TestIDGenerator_Format(t *testing.T) {
	id := NewIDGenerator().NewID()
	assert.Regexp(t, idPattern, id)
}

func TestIDGenerator_WaitsForClockToAdvance(t *testing.T) {
	clock := time.UnixMilli(1_700_000_000_000)
	var slept int
	gen := NewIDGeneratorWithClock(
		func() time.Time { return clock },
		func(d time.Duration) {
			slept++
			clock = clock.Add(d)
		},
	)

	a := gen.NewID()
	b := gen.NewID()
	c := gen.NewID()

	assert.Equal(t, "1700000000000", a[:13])
	assert.Equal(t, "1700000000001", b[:13])
	assert.Equal(t, "1700000000002", c[:13])
	assert.Equal(t, 2, slept)
}

func TestIDGenerator_ClockStepsBack(t *testing.T) {
	clock := time.UnixMilli(1_700_000_000_000)
	var slept int
	gen := NewIDGeneratorWithClock(
		func() time.Time { return clock },
		func(d time.Duration) {
			slept++
			clock = clock.Add(d)
		},
	)

	a := gen.NewID()
	clock = clock.Add(-time.Hour)
	b := gen.NewID()
	c := gen.NewID()

	assert.Equal(t, "1700000000000", a[:13])
	assert.Equal(t, "1700000000001", b[:13])
	assert.Equal(t, "1700000000002", c[:13])
	assert.Zero(t, slept, "a clock that went backwards must not be waited out")
}

func TestIDGenerator_UniqueInBatch(t *testing.T) {
	gen := NewIDGenerator()
	seen := make(map[string]bool)
	var lastPrefix int64
	for i := 0; i < 50; i++ {
		id := gen.NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		prefix, err := strconv.ParseInt(id[:len(id)-idSuffixLen], 10, 64)
		require.NoError(t, err)
		assert.Greater(t, prefix, lastPrefix)
		lastPrefix = prefix
	}
}
