package utils

// Linspace gera n valores igualmente espaçados entre start e stop, inclusive.
// n <= 0 gera uma sequência vazia e n == 1 gera apenas start.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}

	step := (stop - start) / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	// evita erro de arredondamento no último ponto
	values[n-1] = stop

	return values
}
