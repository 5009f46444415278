package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealReadsUTC(t *testing.T) {
	now := Real{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now().UTC(), now, time.Second)
}

func TestFixedIsPinned(t *testing.T) {
	instant := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	pinned := At(instant)

	assert.Equal(t, instant, pinned.Now())
	assert.Equal(t, instant, pinned.Now())
}
