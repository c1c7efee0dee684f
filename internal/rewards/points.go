// Package rewards computes loyalty points from purchase transactions.
//
// Every function in this package is pure: results depend only on the
// arguments, nothing is retained between calls, and no errors are returned.
package rewards

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	lowerTierThreshold = 50
	upperTierThreshold = 100
	upperTierRate      = 2

	// maxScoredAmount is the largest whole amount whose points fit in an
	// int64; larger amounts score the same.
	maxScoredAmount = (math.MaxInt64-lowerTierThreshold)/upperTierRate + upperTierThreshold
)

var maxScoredDecimal = decimal.NewFromInt(maxScoredAmount)

// CalculatePoints converts a purchase amount into loyalty points.
//
// The amount is floored to whole currency units first, so cents never
// earn points. Each whole unit above 50 up to 100 earns 1 point and each
// whole unit above 100 earns 2 more. Zero and negative amounts earn nothing,
// and amounts too large to score in an int64 saturate instead of wrapping.
//
//	CalculatePoints(120)    -> 90
//	CalculatePoints(101)    -> 52
//	CalculatePoints(50.9)   -> 0
func CalculatePoints(amount decimal.Decimal) int64 {
	if amount.GreaterThan(maxScoredDecimal) {
		amount = maxScoredDecimal
	}
	whole := amount.Floor().IntPart()

	var points int64
	if whole > lowerTierThreshold {
		points += min(whole, upperTierThreshold) - lowerTierThreshold
	}
	if whole > upperTierThreshold {
		points += (whole - upperTierThreshold) * upperTierRate
	}
	return points
}

// addPoints adds two non-negative point values, saturating at math.MaxInt64.
func addPoints(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}
