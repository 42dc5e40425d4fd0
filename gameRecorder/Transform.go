package gameRecorder

import "math"

// Transform is a pure numeric mapping applied to an observable before it is
// recorded.
type Transform func(float64) float64

func Identity(x float64) float64 { return x }

func Scale(k float64) Transform {
	return func(x float64) float64 { return x * k }
}

func Cap(limit float64) Transform {
	return func(x float64) float64 { return math.Min(x, limit) }
}

// Chain applies fns left to right.
func Chain(fns ...Transform) Transform {
	return func(x float64) float64 {
		for _, fn := range fns {
			x = fn(x)
		}
		return x
	}
}

// DaysToYears converts a day count on a 360 day year and saturates at one year.
var DaysToYears = Chain(Scale(1.0/360.0), Cap(1.0))
