package domain

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"arenabot/utils"
)

// EventSubType はeventメッセージ（アリーナ → ボット）のサブタイプ
type EventSubType uint8

const (
	EventSubTypeInit          EventSubType = 1
	EventSubTypeTick          EventSubType = 2
	EventSubTypeHitWall       EventSubType = 3
	EventSubTypeRobotHit      EventSubType = 4
	EventSubTypeHitByRobot    EventSubType = 5
	EventSubTypeHitByBullet   EventSubType = 6
	EventSubTypeBulletHit     EventSubType = 7
	EventSubTypeBulletMiss    EventSubType = 8
	EventSubTypeRobotDeath    EventSubType = 9
	EventSubTypeTargetSpotted EventSubType = 10
)

func (s EventSubType) String() string {
	switch s {
	case EventSubTypeInit:
		return "init"
	case EventSubTypeTick:
		return "tick"
	case EventSubTypeHitWall:
		return "hit_wall"
	case EventSubTypeRobotHit:
		return "robot_hit"
	case EventSubTypeHitByRobot:
		return "hit_by_robot"
	case EventSubTypeHitByBullet:
		return "hit_by_bullet"
	case EventSubTypeBulletHit:
		return "bullet_hit"
	case EventSubTypeBulletMiss:
		return "bullet_miss"
	case EventSubTypeRobotDeath:
		return "robot_death"
	case EventSubTypeTargetSpotted:
		return "target_spotted"
	default:
		return fmt.Sprintf("event(%d)", uint8(s))
	}
}

// サイズ定数
const (
	StatusSize      = 32 // 4 * float64
	InitPayloadSize = 16 + StatusSize
	MaxNameSize     = 255
)

var (
	ErrInvalidEventPayload = errors.New("invalid event payload")
	ErrUnknownEvent        = errors.New("unknown event subtype")
	ErrNonFinite           = errors.New("non-finite value")
)

// Status はボット自身の最新の姿勢 (32バイト)
//
//	x, y        float64 (16)
//	heading     float64 (8)
//	gunHeading  float64 (8)
type Status struct {
	X, Y       float64
	Heading    float64
	GunHeading float64
}

// Event はアリーナから届くイベントのペイロード
type Event interface {
	SubType() EventSubType
	Encode() []byte
}

// InitEvent はマップサイズと初期姿勢 (48バイト)
type InitEvent struct {
	Width, Height float64
	Status        Status
}

// TickEvent は毎tickの姿勢 (32バイト)
type TickEvent struct {
	Status Status
}

type HitWallEvent struct{}

// RobotHitEvent は自分から他のボットにぶつかった
//
//	botID u32, name
type RobotHitEvent struct {
	BotID uint32
	Name  string
}

// HitByRobotEvent は他のボットにぶつけられた
type HitByRobotEvent struct {
	BotID uint32
	Name  string
}

// HitByBulletEvent は被弾
//
//	botID u32, power f64, name
type HitByBulletEvent struct {
	BotID uint32
	Power float64
	Name  string
}

// BulletHitEvent は自分の弾が命中した
//
//	botID u32, bulletID u32
type BulletHitEvent struct {
	BotID    uint32
	BulletID uint32
}

// BulletMissEvent は自分の弾が外れた
type BulletMissEvent struct {
	BulletID uint32
}

type RobotDeathEvent struct{}

// TargetSpottedEvent はレーダーが敵を捕捉した
//
//	botID u32, x f64, y f64, name
type TargetSpottedEvent struct {
	BotID uint32
	X, Y  float64
	Name  string
}

func (InitEvent) SubType() EventSubType          { return EventSubTypeInit }
func (TickEvent) SubType() EventSubType          { return EventSubTypeTick }
func (HitWallEvent) SubType() EventSubType       { return EventSubTypeHitWall }
func (RobotHitEvent) SubType() EventSubType      { return EventSubTypeRobotHit }
func (HitByRobotEvent) SubType() EventSubType    { return EventSubTypeHitByRobot }
func (HitByBulletEvent) SubType() EventSubType   { return EventSubTypeHitByBullet }
func (BulletHitEvent) SubType() EventSubType     { return EventSubTypeBulletHit }
func (BulletMissEvent) SubType() EventSubType    { return EventSubTypeBulletMiss }
func (RobotDeathEvent) SubType() EventSubType    { return EventSubTypeRobotDeath }
func (TargetSpottedEvent) SubType() EventSubType { return EventSubTypeTargetSpotted }

// ParseStatus はバイト列からStatusをパースする。NaN/Infは拒否する
func ParseStatus(data []byte) (*Status, error) {
	if len(data) < StatusSize {
		return nil, fmt.Errorf("%w: status needs %d bytes, got %d", ErrInvalidEventPayload, StatusSize, len(data))
	}
	s := &Status{
		X:          getFloat64(data[0:8]),
		Y:          getFloat64(data[8:16]),
		Heading:    getFloat64(data[16:24]),
		GunHeading: getFloat64(data[24:32]),
	}
	if !utils.AllFinite(s.X, s.Y, s.Heading, s.GunHeading) {
		return nil, fmt.Errorf("%w: status", ErrNonFinite)
	}
	return s, nil
}

// Encode はStatusをバイト列にエンコードする
func (s *Status) Encode() []byte {
	data := make([]byte, StatusSize)
	putFloat64(data[0:8], s.X)
	putFloat64(data[8:16], s.Y)
	putFloat64(data[16:24], s.Heading)
	putFloat64(data[24:32], s.GunHeading)
	return data
}

func (e InitEvent) Encode() []byte {
	data := make([]byte, 16, InitPayloadSize)
	putFloat64(data[0:8], e.Width)
	putFloat64(data[8:16], e.Height)
	return append(data, e.Status.Encode()...)
}

func (e TickEvent) Encode() []byte       { return e.Status.Encode() }
func (HitWallEvent) Encode() []byte      { return nil }
func (RobotDeathEvent) Encode() []byte   { return nil }
func (e RobotHitEvent) Encode() []byte   { return encodeBotName(e.BotID, e.Name) }
func (e HitByRobotEvent) Encode() []byte { return encodeBotName(e.BotID, e.Name) }

func (e HitByBulletEvent) Encode() []byte {
	data := make([]byte, 12)
	byteOrder.PutUint32(data[0:4], e.BotID)
	putFloat64(data[4:12], e.Power)
	return appendName(data, e.Name)
}

func (e BulletHitEvent) Encode() []byte {
	data := make([]byte, 8)
	byteOrder.PutUint32(data[0:4], e.BotID)
	byteOrder.PutUint32(data[4:8], e.BulletID)
	return data
}

func (e BulletMissEvent) Encode() []byte {
	data := make([]byte, 4)
	byteOrder.PutUint32(data, e.BulletID)
	return data
}

func (e TargetSpottedEvent) Encode() []byte {
	data := make([]byte, 20)
	byteOrder.PutUint32(data[0:4], e.BotID)
	putFloat64(data[4:12], e.X)
	putFloat64(data[12:20], e.Y)
	return appendName(data, e.Name)
}

// ParseEvent はサブタイプに応じてイベントペイロードをパースする
func ParseEvent(subType EventSubType, data []byte) (Event, error) {
	switch subType {
	case EventSubTypeInit:
		if len(data) < InitPayloadSize {
			return nil, fmt.Errorf("%w: init needs %d bytes, got %d", ErrInvalidEventPayload, InitPayloadSize, len(data))
		}
		w, h := getFloat64(data[0:8]), getFloat64(data[8:16])
		if !utils.AllFinite(w, h) || w <= 0 || h <= 0 {
			return nil, fmt.Errorf("%w: map size %vx%v", ErrInvalidEventPayload, w, h)
		}
		status, err := ParseStatus(data[16:])
		if err != nil {
			return nil, err
		}
		return InitEvent{Width: w, Height: h, Status: *status}, nil

	case EventSubTypeTick:
		status, err := ParseStatus(data)
		if err != nil {
			return nil, err
		}
		return TickEvent{Status: *status}, nil

	case EventSubTypeHitWall:
		return HitWallEvent{}, nil

	case EventSubTypeRobotDeath:
		return RobotDeathEvent{}, nil

	case EventSubTypeRobotHit, EventSubTypeHitByRobot:
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEventPayload, subType)
		}
		name, err := parseName(data[4:])
		if err != nil {
			return nil, err
		}
		id := byteOrder.Uint32(data[0:4])
		if subType == EventSubTypeRobotHit {
			return RobotHitEvent{BotID: id, Name: name}, nil
		}
		return HitByRobotEvent{BotID: id, Name: name}, nil

	case EventSubTypeHitByBullet:
		if len(data) < 12 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEventPayload, subType)
		}
		power := getFloat64(data[4:12])
		if !utils.IsFinite(power) {
			return nil, fmt.Errorf("%w: bullet power", ErrNonFinite)
		}
		name, err := parseName(data[12:])
		if err != nil {
			return nil, err
		}
		return HitByBulletEvent{BotID: byteOrder.Uint32(data[0:4]), Power: power, Name: name}, nil

	case EventSubTypeBulletHit:
		if len(data) < 8 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEventPayload, subType)
		}
		return BulletHitEvent{
			BotID:    byteOrder.Uint32(data[0:4]),
			BulletID: byteOrder.Uint32(data[4:8]),
		}, nil

	case EventSubTypeBulletMiss:
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEventPayload, subType)
		}
		return BulletMissEvent{BulletID: byteOrder.Uint32(data[0:4])}, nil

	case EventSubTypeTargetSpotted:
		if len(data) < 20 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEventPayload, subType)
		}
		x, y := getFloat64(data[4:12]), getFloat64(data[12:20])
		if !utils.AllFinite(x, y) {
			return nil, fmt.Errorf("%w: target position", ErrNonFinite)
		}
		name, err := parseName(data[20:])
		if err != nil {
			return nil, err
		}
		return TargetSpottedEvent{BotID: byteOrder.Uint32(data[0:4]), X: x, Y: y, Name: name}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownEvent, uint8(subType))
}

// EncodeEventMessage はイベントを1メッセージにエンコードする
func EncodeEventMessage(sessionID SessionID, seq uint16, ev Event) []byte {
	return encodeFrame(sessionID, seq, DataTypeEvent, uint8(ev.SubType()), ev.Encode())
}

func encodeBotName(id uint32, name string) []byte {
	data := make([]byte, 4)
	byteOrder.PutUint32(data, id)
	return appendName(data, name)
}

// appendName は u8 長 + UTF-8 で名前を追加する。255バイトを超える分は文字境界で切り詰める
func appendName(data []byte, name string) []byte {
	name = truncateUTF8(name, MaxNameSize)
	data = append(data, byte(len(name)))
	return append(data, name...)
}

func parseName(data []byte) (string, error) {
	if len(data) < 1 {
		return "", fmt.Errorf("%w: missing name length", ErrInvalidEventPayload)
	}
	n := int(data[0])
	if len(data) < 1+n {
		return "", fmt.Errorf("%w: name needs %d bytes, got %d", ErrInvalidEventPayload, n, len(data)-1)
	}
	return string(data[1 : 1+n]), nil
}

func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func getFloat64(b []byte) float64 {
	return math.Float64frombits(byteOrder.Uint64(b))
}

func putFloat64(b []byte, v float64) {
	byteOrder.PutUint64(b, math.Float64bits(v))
}
