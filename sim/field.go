package sim

import (
	"log/slog"
	"math"

	"arenabot/robot"
)

const (
	// 発射時に命中とみなす銃口の角度誤差
	hitTolerance = 2.0
)

// radarWidth はレーダーモードごとの検知幅（度）です。
var radarWidth = map[robot.RadarField]float64{
	robot.RadarFieldThin:   10,
	robot.RadarFieldNormal: 30,
	robot.RadarFieldLarge:  60,
	robot.RadarFieldRound:  360,
}

// Body はフィールド上の自ボットの姿勢です。
type Body struct {
	Position     robot.Position2D
	Heading      float64
	GunHeading   float64
	RadarHeading float64
}

// Target はフィールドに置かれた静止した敵です。
type Target struct {
	ID       robot.BotID
	Name     string
	Position robot.Position2D
}

type eventKind uint8

const (
	evHitWall eventKind = iota + 1
	evTargetSpotted
	evBulletHit
	evBulletMiss
)

type event struct {
	kind   eventKind
	target *Target
	bullet robot.BulletID
}

// Field は1台のボットを動かす簡易ホストです。
// 移動は即時に完了し、マップ外に出る移動はクランプして壁衝突として記録します。
type Field struct {
	width, height float64
	body          Body
	targets       []*Target

	radarVisible bool
	radarLock    robot.RadarLock
	radarField   robot.RadarField
	colors       Colors

	pending    []event
	nextBullet robot.BulletID

	stats  Stats
	prints []string
	logger *slog.Logger
}

// Colors はボットに設定された配色です。
type Colors struct {
	Body, Gun, Radar, Bullets robot.Color
}

// Stats はフィールドで発生したコマンド・イベントの集計です。
type Stats struct {
	Moves    int `json:"moves"`
	Stops    int `json:"stops"`
	Resets   int `json:"resets"`
	Shots    int `json:"shots"`
	Hits     int `json:"hits"`
	WallHits int `json:"wall_hits"`
}

var _ robot.Host = (*Field)(nil)

// NewField は指定サイズのフィールドを作り、ボットを中央・下向きに置きます。
func NewField(width, height float64) *Field {
	return &Field{
		width:  width,
		height: height,
		body: Body{
			Position: robot.Position2D{X: width / 2, Y: height / 2},
		},
		logger: slog.Default(),
	}
}

// SetLogger はRPrintの出力先を差し替えます。
func (f *Field) SetLogger(l *slog.Logger) { f.logger = l }

// Place はボットの位置と向きを直接設定します。
func (f *Field) Place(pos robot.Position2D, heading float64) {
	f.body.Position = pos
	f.body.Heading = robot.NormalizeHeading(heading)
}

// AddTarget は静止した敵を置きます。
func (f *Field) AddTarget(id robot.BotID, name string, pos robot.Position2D) *Target {
	t := &Target{ID: id, Name: name, Position: pos}
	f.targets = append(f.targets, t)
	return t
}

func (f *Field) Body() Body                   { return f.body }
func (f *Field) Stats() Stats                 { return f.stats }
func (f *Field) Prints() []string             { return f.prints }
func (f *Field) Colors() Colors               { return f.colors }
func (f *Field) RadarField() robot.RadarField { return f.radarField }
func (f *Field) RadarLock() robot.RadarLock   { return f.radarLock }
func (f *Field) IsRadarVisible() bool         { return f.radarVisible }

func (f *Field) SetColor(c robot.Color)        { f.colors.Body = c }
func (f *Field) SetGunColor(c robot.Color)     { f.colors.Gun = c }
func (f *Field) SetRadarColor(c robot.Color)   { f.colors.Radar = c }
func (f *Field) SetBulletsColor(c robot.Color) { f.colors.Bullets = c }

func (f *Field) RadarVisible(visible bool) { f.radarVisible = visible }

func (f *Field) LockRadar(to robot.RadarLock) {
	f.radarLock = to
	switch to {
	case robot.RadarLockGun:
		f.body.RadarHeading = f.body.GunHeading
	case robot.RadarLockBody:
		f.body.RadarHeading = f.body.Heading
	}
}

func (f *Field) SetRadarField(field robot.RadarField) { f.radarField = field }

func (f *Field) MapSize() robot.Size {
	return robot.Size{Width: f.width, Height: f.height}
}

func (f *Field) Position() robot.Position2D { return f.body.Position }
func (f *Field) Heading() float64           { return f.body.Heading }
func (f *Field) GunHeading() float64        { return f.body.GunHeading }

// Move は向いている方向へ distance だけ進みます。負の値は後退です。
func (f *Field) Move(distance float64) {
	f.stats.Moves++
	v := robot.HeadingVector(f.body.Heading)
	nx := f.body.Position.X + v.X*distance
	ny := f.body.Position.Y + v.Y*distance
	cx := clamp(nx, 0, f.width)
	cy := clamp(ny, 0, f.height)
	f.body.Position = robot.Position2D{X: cx, Y: cy}
	if cx != nx || cy != ny {
		f.stats.WallHits++
		f.enqueueOnce(event{kind: evHitWall})
	}
}

func (f *Field) Turn(degrees float64) {
	f.body.Heading = robot.NormalizeHeading(f.body.Heading + degrees)
	if f.radarLock == robot.RadarLockBody {
		f.body.RadarHeading = f.body.Heading
	}
}

func (f *Field) GunTurn(degrees float64) {
	f.body.GunHeading = robot.NormalizeHeading(f.body.GunHeading + degrees)
	if f.radarLock == robot.RadarLockGun {
		f.body.RadarHeading = f.body.GunHeading
	}
}

func (f *Field) RadarTurn(degrees float64) {
	if f.radarLock != robot.RadarLockNone {
		return
	}
	f.body.RadarHeading = robot.NormalizeHeading(f.body.RadarHeading + degrees)
}

// Stop は移動が即時完了するため集計のみ行います。
func (f *Field) Stop()  { f.stats.Stops++ }
func (f *Field) Reset() { f.stats.Resets++ }

// Fire は即時に着弾判定します。銃口の先にいる最寄りの敵に命中します。
func (f *Field) Fire(power float64) {
	f.stats.Shots++
	f.nextBullet++
	bullet := f.nextBullet

	var hit *Target
	best := math.Inf(1)
	for _, t := range f.targets {
		bearing := robot.Bearing(f.body.Position, t.Position)
		if robot.AngleError(bearing, f.body.GunHeading) >= hitTolerance {
			continue
		}
		if d := f.body.Position.DistanceTo(t.Position); d < best {
			best = d
			hit = t
		}
	}
	if hit == nil {
		f.pending = append(f.pending, event{kind: evBulletMiss, bullet: bullet})
		return
	}
	f.stats.Hits++
	f.pending = append(f.pending, event{kind: evBulletHit, target: hit, bullet: bullet})
}

func (f *Field) RPrint(text string) {
	f.prints = append(f.prints, text)
	f.logger.Debug("rprint", "text", text)
}

// scan はレーダーの検知幅に入っている敵を捕捉イベントとして積みます。
func (f *Field) scan() {
	width := radarWidth[f.radarField]
	for _, t := range f.targets {
		bearing := robot.Bearing(f.body.Position, t.Position)
		if width >= 360 || robot.AngleError(bearing, f.body.RadarHeading) <= width/2 {
			f.pending = append(f.pending, event{kind: evTargetSpotted, target: t})
		}
	}
}

func (f *Field) enqueueOnce(ev event) {
	for _, p := range f.pending {
		if p.kind == ev.kind {
			return
		}
	}
	f.pending = append(f.pending, ev)
}

// drain は積まれたイベントを取り出します。配送中に積まれたものは次のtickに回ります。
func (f *Field) drain() []event {
	evs := f.pending
	f.pending = nil
	return evs
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
