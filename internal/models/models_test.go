package models

import "testing"

func TestReductionPercentage(t *testing.T) {
	rec := SummaryRecord{OriginalLength: 200, SummaryLength: 50}

	if got := rec.ReductionPercentage(); got != 75 {
		t.Fatalf("ReductionPercentage() = %v, want 75", got)
	}
}

func TestReductionPercentageEmptyOriginal(t *testing.T) {
	rec := SummaryRecord{OriginalLength: 0, SummaryLength: 0}

	if got := rec.ReductionPercentage(); got != 0 {
		t.Fatalf("ReductionPercentage() = %v, want 0", got)
	}
}

func TestReductionPercentageNoReduction(t *testing.T) {
	rec := SummaryRecord{OriginalLength: 40, SummaryLength: 40}

	if got := rec.ReductionPercentage(); got != 0 {
		t.Fatalf("ReductionPercentage() = %v, want 0", got)
	}
}
