package robot

import "math"

// NormalizeHeading は角度を [0, 360) に正規化します。
func NormalizeHeading(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	// -1e-14 + 360 のような丸めで 360 になる場合がある
	if m >= 360 {
		m = 0
	}
	return m
}

// NormalizeAngle は角度差を (-180, 180] に正規化します。
func NormalizeAngle(deg float64) float64 {
	h := NormalizeHeading(deg)
	if h > 180 {
		h -= 360
	}
	return h
}

// Bearing は from から to を見た方位を [0, 360) で返します。
// 0度が+Y方向で、ボット自身の向きと同じ規約です。
func Bearing(from, to Position2D) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	return NormalizeHeading(Degrees(math.Atan2(-dx, dy)))
}

// AngleError は目標方位と現在の向きの差の絶対値を [0, 180] で返します。
func AngleError(target, current float64) float64 {
	return math.Abs(NormalizeAngle(target - current))
}

// HeadingVector は向き deg で1だけ進んだときの移動量を返します。
func HeadingVector(deg float64) Position2D {
	rad := Radians(deg)
	return Position2D{X: -math.Sin(rad), Y: math.Cos(rad)}
}

func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
func Radians(deg float64) float64 { return deg * math.Pi / 180 }
