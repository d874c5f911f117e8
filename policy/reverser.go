package policy

import (
	"fmt"
	"math"

	"arenabot/robot"
)

// PatrolState は巡回中の移動方向です。
type PatrolState uint8

const (
	StateUnknown PatrolState = iota
	StateMovingUp
	StateMovingRight
	StateMovingDown
	StateMovingLeft
)

func (s PatrolState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateMovingUp:
		return "up"
	case StateMovingRight:
		return "right"
	case StateMovingDown:
		return "down"
	case StateMovingLeft:
		return "left"
	default:
		return fmt.Sprintf("PatrolState(%d)", uint8(s))
	}
}

// 反時計回り: 上→右→下→左→上
var counterClockwise = map[PatrolState]PatrolState{
	StateMovingUp:    StateMovingRight,
	StateMovingRight: StateMovingDown,
	StateMovingDown:  StateMovingLeft,
	StateMovingLeft:  StateMovingUp,
}

// 時計回り: 上→左→下→右→上
var clockwise = map[PatrolState]PatrolState{
	StateMovingUp:    StateMovingLeft,
	StateMovingLeft:  StateMovingDown,
	StateMovingDown:  StateMovingRight,
	StateMovingRight: StateMovingUp,
}

// TargetInfo は直近にレーダーで捕捉した敵です。履歴は持ちません。
type TargetInfo struct {
	Detected bool
	ID       robot.BotID
	Distance float64
	Angle    float64
	Position robot.Position2D
}

// Reverser はマップ中央3/5の矩形を巡回し、被弾・衝突のたびに周回方向を反転するポリシーです。
// 射撃は距離と照準誤差の両方が閾値未満のときだけ行います。
type Reverser struct {
	host   robot.Host
	params Params

	mapSize       robot.Size
	wallDistanceX float64
	wallDistanceY float64

	state      PatrolState
	isReversed bool

	target TargetInfo
}

var _ robot.Robot = (*Reverser)(nil)

// NewReverser は指定の調整値でReverserを生成します。
func NewReverser(params Params) *Reverser {
	return &Reverser{params: params}
}

func (r *Reverser) Init(host robot.Host) {
	r.host = host

	// 紫系: 反転・変化
	host.SetColor(robot.RGB(138, 43, 226))
	host.SetGunColor(robot.RGB(186, 85, 211))
	host.SetRadarColor(robot.RGB(218, 112, 214))
	host.SetBulletsColor(robot.RGB(255, 0, 255))

	host.RadarVisible(true)
	host.LockRadar(robot.RadarLockGun)
	host.SetRadarField(robot.RadarFieldThin)

	r.mapSize = host.MapSize()
	r.wallDistanceX = r.mapSize.Width * r.params.BoundaryRatio
	r.wallDistanceY = r.mapSize.Height * r.params.BoundaryRatio

	r.state = StateUnknown
	r.isReversed = false
	r.target = TargetInfo{Distance: math.Inf(1)}
}

// State は現在の巡回状態を返します。
func (r *Reverser) State() PatrolState { return r.state }

// Reversed は周回方向が反転中（時計回り）かを返します。
func (r *Reverser) Reversed() bool { return r.isReversed }

// Target は直近に捕捉した敵を返します。
func (r *Reverser) Target() TargetInfo { return r.target }

// Boundary は巡回境界のマップ端からの距離を返します。
func (r *Reverser) Boundary() (x, y float64) { return r.wallDistanceX, r.wallDistanceY }

// turnAll は本体と銃を同時に回転させます。
func (r *Reverser) turnAll(deg float64) {
	r.host.Turn(deg)
	r.host.GunTurn(deg)
}

func (r *Reverser) Run() {
	if r.state == StateUnknown {
		// 一旦停止して下向き(0度)に揃える
		r.host.Stop()
		r.turnAll(-robot.NormalizeHeading(r.host.Heading()))
		r.state = StateMovingDown
		return
	}

	if !r.reachedBoundary(r.host.Position()) {
		r.host.Move(r.params.MoveStep)
		return
	}

	r.host.RPrint(fmt.Sprintf("Reached %s boundary", boundaryName(r.state)))
	r.host.Stop()
	// 境界線上で往復しないよう、向いている境界から少し下がる
	r.host.Move(-2 * r.params.MoveStep)
	if r.isReversed {
		r.turnAll(-90)
		r.state = clockwise[r.state]
	} else {
		r.turnAll(90)
		r.state = counterClockwise[r.state]
	}
}

func (r *Reverser) reachedBoundary(pos robot.Position2D) bool {
	switch r.state {
	case StateMovingUp:
		return pos.Y < r.wallDistanceY
	case StateMovingDown:
		return pos.Y > r.mapSize.Height-r.wallDistanceY
	case StateMovingLeft:
		return pos.X < r.wallDistanceX
	case StateMovingRight:
		return pos.X > r.mapSize.Width-r.wallDistanceX
	default:
		return false
	}
}

func boundaryName(s PatrolState) string {
	switch s {
	case StateMovingUp:
		return "upper"
	case StateMovingDown:
		return "lower"
	default:
		return s.String()
	}
}

func (r *Reverser) Sensors() {}

// OnHitWall は境界計算が正しければ起きないが、念のため状態を作り直す。
func (r *Reverser) OnHitWall() {
	r.host.RPrint("Hit wall unexpectedly!")
	r.host.Move(-2 * r.wallDistanceY)
	r.host.Reset()
	r.state = StateUnknown
	r.host.RPrint(fmt.Sprintf("Boundary distance X: %.1f, Y: %.1f", r.wallDistanceX, r.wallDistanceY))
}

func (r *Reverser) OnRobotHit(id robot.BotID, name string) {
	r.host.RPrint(fmt.Sprintf("Collision with: %d", id))
	r.reverseDirection()
	r.host.Stop()
}

func (r *Reverser) OnHitByRobot(id robot.BotID, name string) {
	r.host.RPrint("Collided by another bot!")
	r.reverseDirection()
	r.host.Stop()
}

func (r *Reverser) OnHitByBullet(id robot.BotID, name string, power float64) {
	r.host.RPrint(fmt.Sprintf("Hit by %d with power: %g", id, power))
	r.reverseDirection()
	r.host.Stop()
	r.host.SetRadarField(robot.RadarFieldLarge)
}

// OnBulletHit は停止してレーダーを絞り、同じ敵を正確に捕捉し直す。
func (r *Reverser) OnBulletHit(id robot.BotID, bullet robot.BulletID) {
	r.host.RPrint(fmt.Sprintf("Hit target: %d", id))
	r.host.Stop()
	r.host.SetRadarField(robot.RadarFieldThin)
}

// OnBulletMiss はレーダーを広げて再捕捉を速める。
func (r *Reverser) OnBulletMiss(bullet robot.BulletID) {
	r.host.RPrint(fmt.Sprintf("Bullet %d missed", bullet))
	r.host.SetRadarField(robot.RadarFieldNormal)
}

func (r *Reverser) OnRobotDeath() {
	r.host.RPrint("Destroyed!")
}

func (r *Reverser) OnTargetSpotted(id robot.BotID, name string, pos robot.Position2D) {
	self := r.host.Position()
	r.target = TargetInfo{
		Detected: true,
		ID:       id,
		Distance: self.DistanceTo(pos),
		Angle:    robot.Bearing(self, pos),
		Position: pos,
	}

	if r.target.Distance >= r.params.FireRange {
		return
	}
	gunError := robot.AngleError(r.target.Angle, r.host.GunHeading())
	if gunError >= r.params.FireTolerance {
		return
	}
	r.host.Fire(r.params.BulletPower)
	r.host.RPrint(fmt.Sprintf("Fired at %d (distance: %.1f)", id, r.target.Distance))
}

// reverseDirection は周回方向を反転する唯一の経路です。
func (r *Reverser) reverseDirection() {
	r.isReversed = !r.isReversed
	direction := "counter-clockwise"
	if r.isReversed {
		direction = "clockwise"
	}
	r.host.RPrint("Direction reversed to " + direction)
}
