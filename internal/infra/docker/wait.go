// Where: cli/internal/infra/docker/wait.go
// What: Bounded container readiness wait.
// Why: `docker run -d` returns before the container is listed as running.
package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultWaitAttempts = 10
	DefaultWaitInterval = 500 * time.Millisecond
)

// SleepFunc pauses between probe attempts. It returns early with the context
// error when ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real-time SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Waiter polls a ContainerProbe a bounded number of times.
type Waiter struct {
	Probe    ContainerProbe
	Attempts int
	Interval time.Duration
	Sleep    SleepFunc
	Log      logrus.FieldLogger
}

// NewWaiter returns a Waiter with the default budget (10 attempts, 500ms apart).
func NewWaiter(probe ContainerProbe) *Waiter {
	return &Waiter{
		Probe:    probe,
		Attempts: DefaultWaitAttempts,
		Interval: DefaultWaitInterval,
		Sleep:    Sleep,
	}
}

// Wait returns nil as soon as the probe sees the container running, or
// ErrContainerNotRunning once every attempt has failed. Probe errors count as
// "not running yet".
func (w *Waiter) Wait(ctx context.Context, name string) error {
	if w.Probe == nil {
		return errProbeNil
	}
	attempts := w.Attempts
	if attempts <= 0 {
		attempts = DefaultWaitAttempts
	}
	sleep := w.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	log := w.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	for i := 1; i <= attempts; i++ {
		running, err := w.Probe.Running(ctx, name)
		if err != nil {
			log.WithError(err).WithField("attempt", i).Debug("container probe failed")
		}
		if running {
			return nil
		}
		if i == attempts {
			break
		}
		if err := sleep(ctx, w.Interval); err != nil {
			return fmt.Errorf("wait for container %s: %w", name, err)
		}
	}
	return fmt.Errorf("%w: %s not running after %d attempts", ErrContainerNotRunning, name, attempts)
}
