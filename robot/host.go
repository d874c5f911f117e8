package robot

//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . Host

// Color はRGBの色指定です。
type Color struct {
	R, G, B uint8
}

// RGB はColorを生成します。
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Size はマップの大きさです。
type Size struct {
	Width, Height float64
}

// RadarField はレーダーの検知範囲モードです。
// 狭いほど精度が高く、広いほど再捕捉が速くなります。
type RadarField uint8

const (
	RadarFieldNormal RadarField = 0
	RadarFieldThin   RadarField = 1
	RadarFieldLarge  RadarField = 2
	RadarFieldRound  RadarField = 3
)

func (f RadarField) String() string {
	switch f {
	case RadarFieldNormal:
		return "normal"
	case RadarFieldThin:
		return "thin"
	case RadarFieldLarge:
		return "large"
	case RadarFieldRound:
		return "round"
	default:
		return "unknown"
	}
}

// RadarLock はレーダーの追従先です。
type RadarLock uint8

const (
	RadarLockNone RadarLock = 0
	RadarLockGun  RadarLock = 1
	RadarLockBody RadarLock = 2
)

func (l RadarLock) String() string {
	switch l {
	case RadarLockNone:
		return "none"
	case RadarLockGun:
		return "gun"
	case RadarLockBody:
		return "body"
	default:
		return "unknown"
	}
}

// Host はシミュレーション側が提供するボット操作の境界です。
// 移動・旋回・停止は投げっぱなしのコマンドで、戻り値はありません。
type Host interface {
	SetColor(c Color)
	SetGunColor(c Color)
	SetRadarColor(c Color)
	SetBulletsColor(c Color)

	RadarVisible(visible bool)
	LockRadar(to RadarLock)
	SetRadarField(field RadarField)

	MapSize() Size
	Position() Position2D
	// Heading は本体の向きを度で返します。0度はマップの下方向(+Y)です。
	Heading() float64
	GunHeading() float64

	Move(distance float64)
	Turn(degrees float64)
	GunTurn(degrees float64)
	RadarTurn(degrees float64)
	Stop()
	Reset()
	Fire(power float64)

	RPrint(text string)
}
