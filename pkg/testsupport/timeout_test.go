package testsupport_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/riveting/pkg/testsupport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeout_ReturnsValue(t *testing.T) {
	v, err := testsupport.WithTimeout(context.Background(), time.Second, func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestWithTimeout_PassesThroughErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := testsupport.WithTimeout(context.Background(), time.Second, func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestWithTimeout_InvalidDuration(t *testing.T) {
	called := false
	_, err := testsupport.WithTimeout(context.Background(), 0, func(context.Context) (int, error) {
		called = true
		return 1, nil
	})
	assert.ErrorIs(t, err, testsupport.ErrInvalidTimeout)
	assert.False(t, called)
}

func TestWithTimeout_RacesUncooperativeWork(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	start := time.Now()
	_, err := testsupport.WithTimeout(context.Background(), 20*time.Millisecond, func(context.Context) (string, error) {
		<-release // ignores ctx
		return "late", nil
	})
	assert.ErrorIs(t, err, testsupport.ErrDeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWithTimeout_ParentDeadlineIsNotOurs(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	fired := false
	_, err := testsupport.WithTimeout(parent, time.Minute, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}, testsupport.OnTimeout(func() { fired = true }))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	var deadline *testsupport.DeadlineError
	assert.False(t, errors.As(err, &deadline), "parent expiry must not be reported as our timeout")
	assert.False(t, fired)
}

func TestWithTimeout_OnTimeoutRuns(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	fired := 0
	_, err := testsupport.WithTimeout(context.Background(), 10*time.Millisecond, func(context.Context) (int, error) {
		<-release
		return 1, nil
	}, testsupport.OnTimeout(func() { fired++ }))

	var deadline *testsupport.DeadlineError
	require.ErrorAs(t, err, &deadline)
	assert.Equal(t, 10*time.Millisecond, deadline.Timeout)
	assert.Equal(t, 1, fired)
}
