package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_FireRunsOldestPending(t *testing.T) {
	m := NewManual()

	var order []string
	m.Schedule(time.Second, func() { order = append(order, "first") })
	m.Schedule(time.Second, func() { order = append(order, "second") })

	require.True(t, m.Fire())
	require.True(t, m.Fire())
	assert.False(t, m.Fire(), "nothing left to fire")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestManual_CancelPreventsFiring(t *testing.T) {
	m := NewManual()

	cancel := m.Schedule(time.Second, func() {
		t.Error("cancelled task must not run")
	})

	assert.True(t, cancel())
	assert.False(t, cancel(), "second cancel reports nothing pending")
	assert.False(t, m.Fire())
	assert.Zero(t, m.Pending())
}

func TestManual_CancelAfterFireReportsFalse(t *testing.T) {
	m := NewManual()

	cancel := m.Schedule(time.Second, func() {})
	require.True(t, m.Fire())

	assert.False(t, cancel())
}

func TestTimerScheduler_RunsAndCancels(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{})
	s.Schedule(time.Millisecond, func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("scheduled task did not run")
	}

	cancel := s.Schedule(time.Hour, func() {
		t.Error("cancelled task must not run")
	})
	assert.True(t, cancel())
}
