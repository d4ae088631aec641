package core

import "testing"

func TestRizzGiveIsMonotonic(t *testing.T) {
	rs := NewRizzStore()

	if rs.Score("Ghost42") != 0 {
		t.Fatal("unknown identity should score zero")
	}

	prev := 0
	for i := 0; i < 10; i++ {
		got := rs.Give("Ghost42")
		if got != prev+1 {
			t.Fatalf("score went %d -> %d, want +1", prev, got)
		}
		prev = got
	}
	if rs.Score("Ghost42") != 10 {
		t.Fatalf("final score = %d, want 10", rs.Score("Ghost42"))
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  RizzTier
	}{
		{0, RizzTierNone},
		{5, RizzTierNone},
		{6, RizzTierBronze},
		{15, RizzTierBronze},
		{16, RizzTierSilver},
		{30, RizzTierSilver},
		{31, RizzTierGold},
		{50, RizzTierGold},
		{51, RizzTierDiamond},
		{100, RizzTierDiamond},
		{101, RizzTierLegendary},
		{5000, RizzTierLegendary},
	}
	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
