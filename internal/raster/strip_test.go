// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "testing"

func TestStripBuilderAddRow(t *testing.T) {
	cov := NewRowCoverage(2, 6)
	cov.counts = []uint8{16, 0, 8, 4}

	sb := NewStripBuilder()
	sb.AddRow(3, cov)

	want := []Vertex{
		{X: 2.5, Y: 3.5, Coverage: 1},
		{X: 4.5, Y: 3.5, Coverage: 0.5},
		{X: 5.5, Y: 3.5, Coverage: 0.25},
	}
	got := sb.Build()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStripBuilderRowOrder(t *testing.T) {
	cov := NewRowCoverage(0, 2)
	cov.counts = []uint8{16, 16}

	sb := NewStripBuilder()
	sb.AddRow(0, cov)
	sb.AddRow(1, cov)

	if sb.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", sb.Len())
	}
	verts := sb.Build()
	for i := 1; i < len(verts); i++ {
		prev, cur := verts[i-1], verts[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X <= prev.X) {
			t.Fatalf("vertex %d (%v, %v) not in scan order after (%v, %v)",
				i, cur.X, cur.Y, prev.X, prev.Y)
		}
	}
}

func TestStripBuilderEmpty(t *testing.T) {
	sb := NewStripBuilder()
	if got := sb.Build(); len(got) != 0 {
		t.Errorf("empty builder produced %d vertices", len(got))
	}

	cov := NewRowCoverage(0, 4)
	sb.AddRow(0, cov)
	if sb.Len() != 0 {
		t.Errorf("uncovered row produced %d vertices", sb.Len())
	}
}
