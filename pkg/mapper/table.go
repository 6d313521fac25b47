package mapper

import "sync"

// IndexTable holds IndexOf for every coordinate, indexed [ring][step].
type IndexTable [RingCount][StepCount]uint8

var (
	table     IndexTable
	tableOnce sync.Once
)

func buildTable(t *IndexTable) {
	for ring := 0; ring < RingCount; ring++ {
		for step := 0; step < StepCount; step++ {
			t[ring][step] = uint8(IndexOf(NewCoordinate(ring, step)))
		}
	}
}

// Table returns the shared lookup table, building it on first use.
// The table must not be modified.
func Table() *IndexTable {
	tableOnce.Do(func() { buildTable(&table) })
	return &table
}

// Lookup is IndexOf served from the table.
func Lookup(c Coordinate) int {
	return int(Table()[int(c.Ring)%RingCount][int(c.Step)%StepCount])
}
