package mapper

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFromWorld(t *testing.T) {
	testCases := []struct {
		distance, angle int
		expect          Coordinate
	}{
		{0, 0, Coordinate{0, 0}},
		{1, 45, Coordinate{1, 2}},
		{4, 180, Coordinate{4, 8}},
		{4, 179, Coordinate{4, 8}},
		{4, 181, Coordinate{4, 8}},
		{4, 359, Coordinate{4, 0}},
		{9, 90, Coordinate{4, 4}},
		{-3, 90, Coordinate{0, 4}},
		{2, 720 + 45, Coordinate{2, 2}},
		{2, -45, Coordinate{2, 14}},
		{2, 11, Coordinate{2, 0}},
		{2, 12, Coordinate{2, 1}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d@%d", tc.distance, tc.angle), func(t *testing.T) {
			require.Equal(t, tc.expect, FromWorld(tc.distance, tc.angle))
		})
	}
}

func TestVirtualIndexOf(t *testing.T) {
	testCases := []struct {
		coord  Coordinate
		expect int
	}{
		{Coordinate{0, 0}, 79},
		{Coordinate{4, 15}, 0},
		{Coordinate{4, 12}, 3},
		{Coordinate{4, 0}, 15},
		{Coordinate{4, 4}, 11},
		{Coordinate{1, 7}, 56},
		{Coordinate{1, 8}, 55},
		{Coordinate{1, 9}, 54},
		{Coordinate{1, 0}, 63},
		{Coordinate{1, 1}, 62},
	}
	for _, tc := range testCases {
		t.Run(tc.coord.String(), func(t *testing.T) {
			require.Equal(t, tc.expect, VirtualIndexOf(tc.coord))
		})
	}
}

func TestDevirtualize(t *testing.T) {
	testCases := []struct {
		virtual, expect int
	}{
		{0, 0}, {4, 4}, {47, 47},
		{48, 48}, {49, 48}, {63, 55},
		{64, 56}, {72, 56}, {79, 56},
		{80, 0}, {160, 0}, {-1, 56},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.virtual), func(t *testing.T) {
			require.Equal(t, tc.expect, Devirtualize(tc.virtual))
		})
	}
}

func TestIndexOfCoversStrip(t *testing.T) {
	seen := make(map[int]bool)
	for ring := 0; ring < RingCount; ring++ {
		for step := 0; step < StepCount; step++ {
			index := IndexOf(NewCoordinate(ring, step))
			require.True(t, index >= 0 && index < LEDCount, "index %d out of range", index)
			seen[index] = true
		}
	}
	require.Len(t, seen, LEDCount)
	require.Equal(t, 56, IndexOf(Coordinate{0, 3}))
}

func TestTableEquivalence(t *testing.T) {
	var expect IndexTable
	for ring := 0; ring < RingCount; ring++ {
		for step := 0; step < StepCount; step++ {
			expect[ring][step] = uint8(IndexOf(Coordinate{uint8(ring), uint8(step)}))
		}
	}
	if diff := cmp.Diff(&expect, Table()); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
	for ring := 0; ring < RingCount; ring++ {
		for step := 0; step < StepCount; step++ {
			c := NewCoordinate(ring, step)
			require.Equal(t, IndexOf(c), Lookup(c), "coordinate %s", c)
		}
	}
}

func TestTableConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := NewCoordinate(i, i*3)
			if Lookup(c) != IndexOf(c) {
				t.Errorf("lookup mismatch for %s", c)
			}
		}(i)
	}
	wg.Wait()
}

func TestNewCoordinateWraps(t *testing.T) {
	require.Equal(t, Coordinate{0, 0}, NewCoordinate(5, 16))
	require.Equal(t, Coordinate{4, 15}, NewCoordinate(-1, -1))
	require.Equal(t, Coordinate{2, 3}, NewCoordinate(2, 3))
}

func TestTotality(t *testing.T) {
	values := []int{math.MinInt32, -361, -360, -1, 0, 1, 4, 5, 359, 360, 1000, math.MaxInt32}
	for _, d := range values {
		for _, a := range values {
			c := FromWorld(d, a)
			require.True(t, int(c.Ring) < RingCount && int(c.Step) < StepCount, "FromWorld(%d, %d) = %s", d, a, c)
			index := IndexOf(c)
			require.True(t, index >= 0 && index < LEDCount)
		}
	}
	for ring := 0; ring < 256; ring++ {
		for step := 0; step < 256; step += 5 {
			index := IndexOf(Coordinate{uint8(ring), uint8(step)})
			require.True(t, index >= 0 && index < LEDCount)
		}
	}
}

func TestAngle(t *testing.T) {
	require.InDelta(t, math.Pi/2, AngleFromDegrees(90).Radians(), 1e-9)
	require.InDelta(t, -90, AngleFromDegrees(270).Degrees(), 1e-9)
	require.InDelta(t, 0, AngleFromRadians(4*math.Pi).Radians(), 1e-9)
	require.Equal(t, Angle(0), AngleFromRadians(math.NaN()))

	require.Equal(t, 0, StepFromAngle(AngleFromRadians(-math.Pi)))
	require.Equal(t, 8, StepFromAngle(AngleFromRadians(0)))
	require.Equal(t, 12, StepFromAngle(AngleFromDegrees(90)))
	require.Equal(t, 0, StepFromAngle(AngleFromRadians(math.Pi)))

	require.Equal(t, Coordinate{3, 4}, FromWorldAngle(3, AngleFromDegrees(90)))
	require.Equal(t, Coordinate{3, 12}, FromWorldAngle(3, AngleFromDegrees(-90)))
}
