package helpers

import "math"

func Sum(numbers []float64) (total float64) {
	for _, x := range numbers {
		total += x
	}
	return total
}

func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	return Sum(numbers) / float64(len(numbers))
}

// StdDev is the sample standard deviation around the given mean. Lists with
// fewer than two entries have no spread and return 0.
func StdDev(numbers []float64, mean float64) float64 {
	if len(numbers) < 2 {
		return 0
	}
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	variance := total / float64(len(numbers)-1)
	return math.Sqrt(variance)
}

func MinMax(numbers []float64) (min float64, max float64) {
	if len(numbers) == 0 {
		return 0, 0
	}
	min, max = numbers[0], numbers[0]
	for _, x := range numbers[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

func PositiveNegativeRatio(list []float64) float64 {
	countPositive := 0
	countNegative := 0
	for _, item := range list {
		if item > 0 {
			countPositive++
		} else {
			countNegative++
		}
	}

	if countNegative == 0 {
		return 0
	}
	return float64(countPositive) / float64(countNegative)
}

// AllFinite reports whether every value is a usable number.
func AllFinite(list []float64) bool {
	for _, item := range list {
		if math.IsNaN(item) || math.IsInf(item, 0) {
			return false
		}
	}
	return true
}
