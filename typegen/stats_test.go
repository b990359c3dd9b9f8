package typegen

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_InitialState(t *testing.T) {
	s := NewStats()
	outcome := s.Current()

	assert.Equal(t, StatusNeverRun, outcome.Status)
	assert.Nil(t, outcome.LastGenerated)
	assert.Empty(t, outcome.ErrorMessage)

	var zero Stats
	assert.Equal(t, StatusNeverRun, zero.Current().Status)
}

func TestStats_LastWriteWins(t *testing.T) {
	s := NewStats()
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	s.RecordError(t1, "a", "boom")
	outcome := s.Current()
	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "boom", outcome.ErrorMessage)
	assert.Equal(t, "a", outcome.RunID)

	s.RecordSuccess(t2, "b")
	outcome = s.Current()
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Empty(t, outcome.ErrorMessage, "success clears the previous error")
	require.NotNil(t, outcome.LastGenerated)
	assert.True(t, outcome.LastGenerated.Equal(t2))
}

func TestStats_CurrentReturnsCopy(t *testing.T) {
	s := NewStats()
	s.RecordSuccess(time.Unix(100, 0), "a")

	outcome := s.Current()
	*outcome.LastGenerated = time.Unix(0, 0)

	assert.Equal(t, int64(100), s.Current().LastGenerated.Unix())
}

func TestStats_ConcurrentAccess(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.RecordSuccess(time.Now(), "w")
		}()
		go func() {
			defer wg.Done()
			_ = s.Current()
		}()
	}
	wg.Wait()

	assert.Equal(t, StatusSuccess, s.Current().Status)
}
