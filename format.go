package main

import (
	"math"

	"github.com/Rhymond/go-money"
)

// eur formats an amount for display, e.g. "€1,234.50".
func eur(v float64) string {
	return money.NewFromFloat(v, money.EUR).Display()
}

// RoundDec rounds a float number to the provided number of decimal places.
func RoundDec(v float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(v*f) / f
}
