package sh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tracker.go/pkg/env"
)

func TestIntArgs(t *testing.T) {
	vals, err := IntArgs([]string{"3", "-45", "extra"}, "DISTANCE", "ANGLE")
	require.NoError(t, err)
	require.Equal(t, []int{3, -45}, vals)

	_, err = IntArgs([]string{"3"}, "DISTANCE", "ANGLE")
	require.EqualError(t, err, "ANGLE required")

	_, err = IntArgs([]string{"x", "1"}, "RING", "STEP")
	require.Error(t, err)
}

func TestNewCheckedRejectsInvalidConfig(t *testing.T) {
	conf := env.NewConfig()
	conf.RingCapacity = 0
	_, err := NewChecked(conf)
	require.EqualError(t, err, "ring capacity must be positive: 0")
}
