package docker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedProbe struct {
	results []bool
	errs    []error
	calls   int
}

func (p *scriptedProbe) Running(_ context.Context, _ string) (bool, error) {
	i := p.calls
	p.calls++
	var err error
	if i < len(p.errs) {
		err = p.errs[i]
	}
	if i < len(p.results) {
		return p.results[i], err
	}
	return false, err
}

type recordingSleep struct {
	durations []time.Duration
}

func (r *recordingSleep) sleep(_ context.Context, d time.Duration) error {
	r.durations = append(r.durations, d)
	return nil
}

func TestWaiterReturnsWhenRunning(t *testing.T) {
	probe := &scriptedProbe{results: []bool{false, false, true}}
	clock := &recordingSleep{}
	w := NewWaiter(probe)
	w.Sleep = clock.sleep

	require.NoError(t, w.Wait(context.Background(), "shop"))

	assert.Equal(t, 3, probe.calls)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, clock.durations)
}

func TestWaiterExhaustsBudget(t *testing.T) {
	probe := &scriptedProbe{}
	clock := &recordingSleep{}
	w := NewWaiter(probe)
	w.Sleep = clock.sleep

	err := w.Wait(context.Background(), "shop")

	require.ErrorIs(t, err, ErrContainerNotRunning)
	assert.Equal(t, DefaultWaitAttempts, probe.calls)
	assert.Len(t, clock.durations, DefaultWaitAttempts-1)
}

func TestWaiterTreatsProbeErrorsAsNotRunning(t *testing.T) {
	probe := &scriptedProbe{
		results: []bool{false, true},
		errs:    []error{errors.New("daemon busy")},
	}
	w := &Waiter{Probe: probe, Attempts: 3, Interval: time.Second, Sleep: (&recordingSleep{}).sleep}

	require.NoError(t, w.Wait(context.Background(), "shop"))
	assert.Equal(t, 2, probe.calls)
}

func TestWaiterStopsOnSleepError(t *testing.T) {
	probe := &scriptedProbe{}
	w := &Waiter{Probe: probe, Attempts: 5, Sleep: func(context.Context, time.Duration) error {
		return context.Canceled
	}}

	err := w.Wait(context.Background(), "shop")

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, probe.calls)
}

func TestWaiterRequiresProbe(t *testing.T) {
	assert.ErrorIs(t, (&Waiter{}).Wait(context.Background(), "shop"), errProbeNil)
}

func TestSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
}
