package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockPort_StableAndInRange(t *testing.T) {
	for _, name := range []string{"Pomodoro", "pomodoro", "x"} {
		port := LockPort(name)
		assert.Equal(t, port, LockPort(name))
		assert.GreaterOrEqual(t, port, minLockPort)
		assert.LessOrEqual(t, port, maxLockPort)
	}
}

func TestAcquire_SecondHolderFails(t *testing.T) {
	first, err := acquire("127.0.0.1:0")
	require.NoError(t, err)
	defer first.Release()

	_, err = acquire(first.Address())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))
}

func TestInstanceGuard_ReleaseIsIdempotent(t *testing.T) {
	guard, err := acquire("127.0.0.1:0")
	require.NoError(t, err)
	address := guard.Address()
	assert.NotEmpty(t, address)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())

	again, err := acquire(address)
	require.NoError(t, err)
	require.NoError(t, again.Release())

	var nilGuard *InstanceGuard
	assert.NoError(t, nilGuard.Release())
}
