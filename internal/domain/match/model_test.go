package match

import "testing"

func TestDeriveResult(t *testing.T) {
	cases := []struct {
		name         string
		goalsFor     int
		goalsAgainst int
		want         Result
	}{
		{name: "win", goalsFor: 3, goalsAgainst: 1, want: ResultWin},
		{name: "loss", goalsFor: 0, goalsAgainst: 2, want: ResultLoss},
		{name: "draw", goalsFor: 2, goalsAgainst: 2, want: ResultDraw},
		{name: "scoreless draw", goalsFor: 0, goalsAgainst: 0, want: ResultDraw},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveResult(tc.goalsFor, tc.goalsAgainst); got != tc.want {
				t.Fatalf("DeriveResult(%d, %d) = %s, want %s", tc.goalsFor, tc.goalsAgainst, got, tc.want)
			}
		})
	}
}
