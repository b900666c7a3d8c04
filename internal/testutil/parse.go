package testutil

import "strconv"

func mustFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		panic(err)
	}
	return v
}
