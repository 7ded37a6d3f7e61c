package report

import (
	"math"
	"strconv"
)

// BMI returns weight / height(m)^2 rounded to one decimal. ok is false when
// either value is missing.
func BMI(heightCM, weightKG float64) (float64, bool) {
	if heightCM <= 0 || weightKG <= 0 {
		return 0, false
	}
	m := heightCM / 100
	return math.Round(weightKG/(m*m)*10) / 10, true
}

// FormatBMI renders BMI with one decimal, or "-" when unknown.
func FormatBMI(heightCM, weightKG float64) string {
	v, ok := BMI(heightCM, weightKG)
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatOptional(v float64) string {
	if v <= 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
