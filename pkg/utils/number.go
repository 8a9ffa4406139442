package utils

import "math"

// RoundToNearestInt arredonda para o inteiro mais próximo
func RoundToNearestInt(f float64) int {
	return int(math.Round(f))
}

// MeanToNearestInt calcula a média dos valores arredondada para o inteiro
// mais próximo. Lista vazia resulta em zero.
func MeanToNearestInt(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	return RoundToNearestInt(float64(sum) / float64(len(values)))
}
