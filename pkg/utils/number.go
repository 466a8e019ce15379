package utils

import "math"

// RoundHalfEven arredonda para a quantidade de casas informada usando
// arredondamento bancário (0.5 vai para o par mais próximo)
func RoundHalfEven(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	scale := math.Pow(10, float64(places))
	return math.RoundToEven(f*scale) / scale
}

// SafeDivide retorna numerator/denominator, ou 0 quando o denominador é 0
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
