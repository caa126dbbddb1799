package rating

import "testing"

func TestAverage_PoolsBothJudgeKinds(t *testing.T) {
	ratings := []Rating{{Score: 8}}
	guests := []GuestRating{{Score: 6}}

	if got := Average(ratings, guests); got != 7.00 {
		t.Fatalf("Average = %v, want 7.00", got)
	}
}

func TestAverage_EmptyMeansZero(t *testing.T) {
	if got := Average(nil, nil); got != 0 {
		t.Fatalf("Average of no scores = %v, want 0", got)
	}
}

func TestAverage_RoundsToTwoDecimals(t *testing.T) {
	ratings := []Rating{{Score: 7}, {Score: 8}, {Score: 8}}

	// 23/3 = 7.6666...
	if got := Average(ratings, nil); got != 7.67 {
		t.Fatalf("Average = %v, want 7.67", got)
	}
}

func TestValidScore(t *testing.T) {
	for _, s := range []int{MinScore, 5, MaxScore} {
		if !ValidScore(s) {
			t.Fatalf("expected score %d to be valid", s)
		}
	}
	for _, s := range []int{0, -1, 11} {
		if ValidScore(s) {
			t.Fatalf("expected score %d to be invalid", s)
		}
	}
}
