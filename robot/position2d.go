package robot

import (
	"math"

	"arenabot/utils"
)

// Position2D はマップ上の座標です。Yは下向きに増えます。
type Position2D struct {
	X, Y float64
}

func (p Position2D) Sub(o Position2D) Position2D { return Position2D{p.X - o.X, p.Y - o.Y} }
func (p Position2D) Add(o Position2D) Position2D { return Position2D{p.X + o.X, p.Y + o.Y} }

// DistanceTo は2点間のユークリッド距離を返します。
func (p Position2D) DistanceTo(o Position2D) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// IsFinite はNaN/Infを含まないかを返します。
func (p Position2D) IsFinite() bool {
	return utils.AllFinite(p.X, p.Y)
}
