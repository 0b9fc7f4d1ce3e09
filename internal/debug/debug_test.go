package debug

import (
	"reflect"
	"testing"
)

func TestStatsLines(t *testing.T) {
	got := StatsLines(4, 2, false, false)
	want := []string{"Vertices: 4", "Triangles: 2", "Indices: 16-bit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StatsLines() = %q, want %q", got, want)
	}

	got = StatsLines(66049, 131072, true, true)
	if got[2] != "Indices: 32-bit (drawn unindexed)" {
		t.Errorf("StatsLines()[2] = %q", got[2])
	}
}
