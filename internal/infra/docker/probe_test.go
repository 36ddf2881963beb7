package docker

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDockerClient struct {
	mock.Mock
}

func (m *MockDockerClient) ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
	args := m.Called(ctx, options)
	return args.Get(0).([]container.Summary), args.Error(1)
}

func TestAPIProbeRunning(t *testing.T) {
	client := new(MockDockerClient)
	client.On("ContainerList", mock.Anything, mock.MatchedBy(func(opts container.ListOptions) bool {
		return opts.Filters.ExactMatch("name", "^shop$") && opts.Filters.ExactMatch("status", "running")
	})).Return([]container.Summary{
		{Names: []string{"/shop"}, State: "running"},
	}, nil).Once()

	running, err := APIProbe{Client: client}.Running(context.Background(), "shop")

	require.NoError(t, err)
	assert.True(t, running)
	client.AssertExpectations(t)
}

func TestAPIProbeIgnoresOtherNames(t *testing.T) {
	client := new(MockDockerClient)
	client.On("ContainerList", mock.Anything, mock.Anything).Return([]container.Summary{
		{Names: []string{"/shop-db"}, State: "running"},
		{Names: []string{"/shop"}, State: "exited"},
	}, nil)

	running, err := APIProbe{Client: client}.Running(context.Background(), "shop")

	require.NoError(t, err)
	assert.False(t, running)
}

func TestAPIProbeWrapsError(t *testing.T) {
	client := new(MockDockerClient)
	client.On("ContainerList", mock.Anything, mock.Anything).Return([]container.Summary(nil), errors.New("no daemon"))

	_, err := APIProbe{Client: client}.Running(context.Background(), "shop")

	require.Error(t, err)
	assert.Equal(t, "list containers: no daemon", err.Error())
}

func TestAPIProbeWithoutClient(t *testing.T) {
	_, err := APIProbe{}.Running(context.Background(), "shop")
	assert.ErrorIs(t, err, errDockerClientNil)
}

func TestNewDockerClient(t *testing.T) {
	client, err := NewDockerClient()
	require.NoError(t, err)
	require.NotNil(t, client)
	_ = client.Close()
}
