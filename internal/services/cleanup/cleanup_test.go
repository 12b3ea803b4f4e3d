package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExpirer struct {
	mock.Mock
}

func (m *mockExpirer) ExpireIdle(ctx context.Context, ttl time.Duration) (int, error) {
	args := m.Called(ctx, ttl)
	return args.Int(0), args.Error(1)
}

func TestService_RunOnce(t *testing.T) {
	expirer := new(mockExpirer)
	expirer.On("ExpireIdle", mock.Anything, 24*time.Hour).Return(3, nil).Once()
	expirer.On("ExpireIdle", mock.Anything, 24*time.Hour).Return(0, errors.New("locked")).Once()

	s := NewService(expirer, 24*time.Hour, "@every 10m")

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = s.RunOnce(context.Background())
	assert.Error(t, err)
	expirer.AssertExpectations(t)
}

func TestService_StartStop(t *testing.T) {
	expirer := new(mockExpirer)
	s := NewService(expirer, time.Hour, "@every 10m")

	require.NoError(t, s.Start())
	require.NoError(t, s.Start(), "second start is a no-op")
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), s.Next(), 5*time.Second)

	s.Stop()
	s.Stop()
	assert.True(t, s.Next().IsZero())
	expirer.AssertNotCalled(t, "ExpireIdle", mock.Anything, mock.Anything)
}

func TestService_Disabled(t *testing.T) {
	s := NewService(new(mockExpirer), 0, "@every 10m")

	require.NoError(t, s.Start())
	assert.True(t, s.Next().IsZero())
	s.Stop()
}

func TestService_InvalidSchedule(t *testing.T) {
	s := NewService(new(mockExpirer), time.Hour, "not a schedule")

	err := s.Start()
	assert.Error(t, err)
}
