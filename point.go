package charts

type Point[T, U ScalerConstraint] struct {
	X T
	Y U
}

func NumberPoint(x, y float64) Point[float64, float64] {
	return Point[float64, float64]{
		X: x,
		Y: y,
	}
}

// Project maps a point through a pair of scalers.
func Project[T, U ScalerConstraint](p Point[T, U], x Scaler[T], y Scaler[U]) Point[float64, float64] {
	return NumberPoint(x.Scale(p.X), y.Scale(p.Y))
}
