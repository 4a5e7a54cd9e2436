package stats

import "gonum.org/v1/gonum/stat/distuv"

// ZVal returns the two-tailed Z-value for a confidence interval given in
// percent, e.g. 1.96 for 95.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.UnitNormal
	return dist.Quantile((1 + confidenceInterval/100) / 2)
}
