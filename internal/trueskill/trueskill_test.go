package trueskill

import (
	"math"
	"testing"
)

func TestRateFewerThanTwo(t *testing.T) {
	cfg := DefaultConfig()
	if got := Rate(nil, cfg); len(got) != 0 {
		t.Errorf("Rate(nil) returned %d ratings", len(got))
	}
	in := []Rating{{Mu: 1234, Sigma: 56}}
	got := Rate(in, cfg)
	if got[0] != in[0] {
		t.Errorf("single competitor: got %+v, want input unchanged", got[0])
	}
}

func TestRateTwoNewPlayers(t *testing.T) {
	cfg := DefaultConfig()
	prior := cfg.NewRating()
	post := Rate([]Rating{prior, prior}, cfg)

	if !(post[0].Mu > prior.Mu) {
		t.Errorf("winner mean %v should rise above prior %v", post[0].Mu, prior.Mu)
	}
	if !(post[1].Mu < prior.Mu) {
		t.Errorf("loser mean %v should fall below prior %v", post[1].Mu, prior.Mu)
	}
	// Equal priors make the update symmetric about the prior mean.
	if diff := (post[0].Mu - prior.Mu) + (post[1].Mu - prior.Mu); math.Abs(diff) > 1e-9 {
		t.Errorf("mean shifts should cancel, sum = %v", diff)
	}

	inflated := math.Sqrt(prior.Sigma*prior.Sigma + cfg.Tau*cfg.Tau)
	for i, r := range post {
		if !(r.Sigma > 0) {
			t.Errorf("posterior[%d].Sigma = %v, want > 0", i, r.Sigma)
		}
		if !(r.Sigma < inflated) {
			t.Errorf("posterior[%d].Sigma = %v, want < drift-inflated prior %v", i, r.Sigma, inflated)
		}
	}
	if post[0].Sigma != post[1].Sigma {
		t.Errorf("symmetric comparison should shrink both sigmas equally: %v vs %v", post[0].Sigma, post[1].Sigma)
	}
}

func TestRateSigmaNeverExceedsDriftInflatedPrior(t *testing.T) {
	cfg := DefaultConfig()
	tests := [][]Rating{
		{{Mu: 1500, Sigma: 500}, {Mu: 1500, Sigma: 500}},
		{{Mu: 1200, Sigma: 300}, {Mu: 1800, Sigma: 100}},
		{{Mu: 2500, Sigma: 50}, {Mu: 900, Sigma: 499}, {Mu: 900, Sigma: 20}},
		{{Mu: 1500, Sigma: 500}, {Mu: 1500, Sigma: 0.01}, {Mu: 1500, Sigma: 500}, {Mu: 1500, Sigma: 250}},
	}
	for _, ordered := range tests {
		post := Rate(ordered, cfg)
		for i := range post {
			bound := math.Sqrt(ordered[i].Sigma*ordered[i].Sigma + cfg.Tau*cfg.Tau)
			if post[i].Sigma > bound+1e-9 {
				t.Errorf("ordered %v: posterior[%d].Sigma = %v exceeds bound %v", ordered, i, post[i].Sigma, bound)
			}
			if !(post[i].Sigma > 0) {
				t.Errorf("ordered %v: posterior[%d].Sigma = %v, want strictly positive", ordered, i, post[i].Sigma)
			}
			if math.IsNaN(post[i].Mu) || math.IsNaN(post[i].Sigma) {
				t.Errorf("ordered %v: posterior[%d] is NaN", ordered, i)
			}
		}
	}
}

func TestRateUpsetMovesMoreThanExpectedWin(t *testing.T) {
	cfg := DefaultConfig()
	strong := Rating{Mu: 2000, Sigma: 200}
	weak := Rating{Mu: 1000, Sigma: 200}

	expected := Rate([]Rating{strong, weak}, cfg)
	upset := Rate([]Rating{weak, strong}, cfg)

	expectedShift := expected[0].Mu - strong.Mu
	upsetShift := upset[0].Mu - weak.Mu
	if !(upsetShift > expectedShift) {
		t.Errorf("an upset winner should gain more (%v) than an expected winner (%v)", upsetShift, expectedShift)
	}
	if !(upsetShift > 0) {
		t.Errorf("upset winner should still gain, got %v", upsetShift)
	}
}

func TestRateDoesNotModifyInput(t *testing.T) {
	cfg := DefaultConfig()
	in := []Rating{{Mu: 1500, Sigma: 500}, {Mu: 1400, Sigma: 300}}
	want := make([]Rating, len(in))
	copy(want, in)
	Rate(in, cfg)
	for i := range in {
		if in[i] != want[i] {
			t.Errorf("input[%d] mutated: %+v", i, in[i])
		}
	}
}

func TestRateMiddlePlayerTwoComparisons(t *testing.T) {
	cfg := DefaultConfig()
	r := Rating{Mu: 1500, Sigma: 500}
	three := Rate([]Rating{r, r, r}, cfg)

	// The middle competitor wins one comparison and loses one; with identical
	// priors the shifts cancel and the mean stays put while both endpoints move.
	if math.Abs(three[1].Mu-r.Mu) > 1e-9 {
		t.Errorf("middle mean moved to %v, want %v", three[1].Mu, r.Mu)
	}
	if !(three[0].Mu > r.Mu) || !(three[2].Mu < r.Mu) {
		t.Errorf("endpoints should separate: got %v, %v", three[0].Mu, three[2].Mu)
	}
	// Two comparisons shrink the middle player's sigma more than one shrinks
	// an endpoint's.
	if !(three[1].Sigma < three[0].Sigma) {
		t.Errorf("middle sigma %v should be below endpoint sigma %v", three[1].Sigma, three[0].Sigma)
	}
}

func TestWinProbability(t *testing.T) {
	cfg := DefaultConfig()
	a := Rating{Mu: 1500, Sigma: 500}
	if p := WinProbability(a, a, cfg); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("equal beliefs: win probability = %v, want 0.5", p)
	}
	b := Rating{Mu: 1000, Sigma: 500}
	pa := WinProbability(a, b, cfg)
	pb := WinProbability(b, a, cfg)
	if !(pa > 0.5) {
		t.Errorf("higher mean should be favored, got %v", pa)
	}
	if math.Abs(pa+pb-1) > 1e-9 {
		t.Errorf("probabilities should be complementary: %v + %v", pa, pb)
	}
}
