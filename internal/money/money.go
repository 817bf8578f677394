// Package money fixes the rounding policy for every monetary figure the
// service emits: amounts are float64 in the model and rounded to cents at
// each output boundary.
package money

import "math"

// Round rounds a currency amount to two decimal places.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Total computes a line total from unit price and quantity, rounded to cents.
func Total(unitPrice float64, quantity int) float64 {
	return Round(unitPrice * float64(quantity))
}
