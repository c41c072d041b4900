// Package pricing implements the platform fee markup between the
// pharmacist-facing hourly rate and the owner-facing cost.
package pricing

import "math"

// FeePercent is the fixed platform markup. An 8.33% fee means the owner pays
// $65.00/hr for a $60.00/hr pharmacist rate.
const FeePercent = 8.33

// OwnerCost converts a pharmacist hourly rate into the owner-facing rate,
// rounded to the nearest cent.
func OwnerCost(pharmacistRate float64) float64 {
	return round2(pharmacistRate * (1 + FeePercent/100))
}

// PharmacistEarnings is the inverse of OwnerCost. Because both directions
// round to cents independently, a round trip can drift by up to $0.01.
func PharmacistEarnings(ownerRate float64) float64 {
	return round2(ownerRate / (1 + FeePercent/100))
}

// TotalEarnings is what the pharmacist takes home for a whole shift.
func TotalEarnings(pharmacistRate float64, totalHours int) float64 {
	return round2(pharmacistRate * float64(totalHours))
}

// TotalCost is what the owner pays for a whole shift.
func TotalCost(pharmacistRate float64, totalHours int) float64 {
	return round2(OwnerCost(pharmacistRate) * float64(totalHours))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
