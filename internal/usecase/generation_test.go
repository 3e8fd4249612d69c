package usecase

import "testing"

func TestGeneration(t *testing.T) {
	t.Parallel()

	var gen Generation
	first := gen.Begin()
	if !gen.IsCurrent(first) {
		t.Fatalf("fresh token should be current")
	}

	second := gen.Begin()
	if gen.IsCurrent(first) {
		t.Fatalf("older token should be stale after Begin")
	}
	if !gen.IsCurrent(second) {
		t.Fatalf("latest token should be current")
	}

	gen.Invalidate()
	if gen.IsCurrent(second) {
		t.Fatalf("Invalidate should stale every token")
	}
}

func TestGeneration_IndependentPipelines(t *testing.T) {
	t.Parallel()

	var manual, scheduled Generation
	m := manual.Begin()
	s := scheduled.Begin()
	scheduled.Begin()

	if !manual.IsCurrent(m) {
		t.Fatalf("manual pipeline must not be affected by the schedule pipeline")
	}
	if scheduled.IsCurrent(s) {
		t.Fatalf("schedule pipeline token should be stale")
	}
}
