package analytics

// Gini returns the Gini coefficient of s using the rank form
//
//	G = (n+1)/n - 2/(n^2 mu) * sum_i (n+1-i) y_(i)
//
// over the ascending order statistics y_(1) <= ... <= y_(n). It is zero for
// a perfectly equal sample and tends to one as a single unit holds the total.
func Gini(s Sample) (float64, error) {
	if err := RequireNonEmpty(s, "gini"); err != nil {
		return 0, err
	}
	sorted := s.Sorted()
	mu := sorted.Mean()
	if err := RequireNonZero(mu, "mean", "gini"); err != nil {
		return 0, err
	}

	n := float64(len(sorted))
	weighted := 0.0
	for i, y := range sorted {
		weighted += (n - float64(i)) * y
	}
	return (n+1)/n - 2*weighted/(n*n*mu), nil
}
