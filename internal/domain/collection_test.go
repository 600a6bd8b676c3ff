package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_RefreshReplaces(t *testing.T) {
	var c Collection[string]

	require.NoError(t, c.Refresh(context.Background(), func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	}))
	require.NoError(t, c.Refresh(context.Background(), func(context.Context) ([]string, error) {
		return []string{"c"}, nil
	}))

	assert.Equal(t, []string{"c"}, c.Items())
}

func TestCollection_FailedRefreshKeepsSnapshot(t *testing.T) {
	var c Collection[int]
	require.NoError(t, c.Refresh(context.Background(), func(context.Context) ([]int, error) {
		return []int{1, 2}, nil
	}))

	err := c.Refresh(context.Background(), func(context.Context) ([]int, error) {
		return nil, errors.New("down")
	})

	assert.EqualError(t, err, "down")
	assert.Equal(t, []int{1, 2}, c.Items())
}

func TestCollection_ItemsIsACopy(t *testing.T) {
	var c Collection[int]
	_ = c.Refresh(context.Background(), func(context.Context) ([]int, error) { return []int{1}, nil })

	items := c.Items()
	items[0] = 99

	assert.Equal(t, []int{1}, c.Items())
	c.Reset()
	assert.Empty(t, c.Items())
}
