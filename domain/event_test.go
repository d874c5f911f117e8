package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func parseEventMessage(t *testing.T, data []byte) Event {
	t.Helper()
	frame, err := ParseFrame(data)
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	if frame.PayloadHeader.DataType != DataTypeEvent {
		t.Fatalf("DataType = %d, want event", frame.PayloadHeader.DataType)
	}
	ev, err := ParseEvent(EventSubType(frame.PayloadHeader.SubType), frame.Payload)
	if err != nil {
		t.Fatalf("ParseEvent failed: %v", err)
	}
	return ev
}

func TestEventMessages(t *testing.T) {
	status := Status{X: 12.5, Y: 300, Heading: 90, GunHeading: 270.25}
	events := []Event{
		InitEvent{Width: 1000, Height: 800, Status: status},
		TickEvent{Status: status},
		HitWallEvent{},
		RobotHitEvent{BotID: 3, Name: "rammer"},
		HitByRobotEvent{BotID: 4, Name: ""},
		HitByBulletEvent{BotID: 5, Power: 2.5, Name: "sniper"},
		BulletHitEvent{BotID: 6, BulletID: 77},
		BulletMissEvent{BulletID: 78},
		RobotDeathEvent{},
		TargetSpottedEvent{BotID: 9, X: -1.5, Y: 2.25, Name: "ターゲット"},
	}

	id := NewSessionID()
	for _, want := range events {
		t.Run(want.SubType().String(), func(t *testing.T) {
			got := parseEventMessage(t, EncodeEventMessage(id, 1, want))
			if got != want {
				t.Errorf("event = %+v, want %+v", got, want)
			}
		})
	}
}

func TestParseEvent_Truncated(t *testing.T) {
	tests := []struct {
		sub  EventSubType
		data []byte
	}{
		{EventSubTypeInit, make([]byte, InitPayloadSize-1)},
		{EventSubTypeTick, make([]byte, StatusSize-1)},
		{EventSubTypeRobotHit, []byte{1, 0, 0}},
		{EventSubTypeRobotHit, []byte{1, 0, 0, 0}},          // 名前の長さがない
		{EventSubTypeHitByRobot, []byte{1, 0, 0, 0, 5, 'a'}}, // 名前が短い
		{EventSubTypeHitByBullet, make([]byte, 11)},
		{EventSubTypeBulletHit, make([]byte, 7)},
		{EventSubTypeBulletMiss, make([]byte, 3)},
		{EventSubTypeTargetSpotted, make([]byte, 19)},
	}

	for _, tt := range tests {
		t.Run(tt.sub.String(), func(t *testing.T) {
			if _, err := ParseEvent(tt.sub, tt.data); !errors.Is(err, ErrInvalidEventPayload) {
				t.Errorf("err = %v, want ErrInvalidEventPayload", err)
			}
		})
	}
}

func TestParseEvent_NonFinite(t *testing.T) {
	spotted := TargetSpottedEvent{BotID: 1, X: math.NaN(), Y: 0, Name: "x"}
	if _, err := ParseEvent(EventSubTypeTargetSpotted, spotted.Encode()); !errors.Is(err, ErrNonFinite) {
		t.Errorf("spotted NaN: err = %v, want ErrNonFinite", err)
	}

	tick := TickEvent{Status: Status{X: math.Inf(1)}}
	if _, err := ParseEvent(EventSubTypeTick, tick.Encode()); !errors.Is(err, ErrNonFinite) {
		t.Errorf("tick Inf: err = %v, want ErrNonFinite", err)
	}

	hit := HitByBulletEvent{Power: math.Inf(-1)}
	if _, err := ParseEvent(EventSubTypeHitByBullet, hit.Encode()); !errors.Is(err, ErrNonFinite) {
		t.Errorf("bullet power -Inf: err = %v, want ErrNonFinite", err)
	}
}

func TestParseEvent_InvalidMapSize(t *testing.T) {
	ev := InitEvent{Width: 0, Height: 100}
	if _, err := ParseEvent(EventSubTypeInit, ev.Encode()); !errors.Is(err, ErrInvalidEventPayload) {
		t.Errorf("err = %v, want ErrInvalidEventPayload", err)
	}
}

func TestParseEvent_Unknown(t *testing.T) {
	if _, err := ParseEvent(EventSubType(99), nil); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("err = %v, want ErrUnknownEvent", err)
	}
}

func TestEventName_Truncated(t *testing.T) {
	// 3バイト文字を並べて255バイト境界をまたがせる
	name := strings.Repeat("あ", 100)
	ev := RobotHitEvent{BotID: 1, Name: name}

	got, err := ParseEvent(EventSubTypeRobotHit, ev.Encode())
	if err != nil {
		t.Fatalf("ParseEvent failed: %v", err)
	}
	gotName := got.(RobotHitEvent).Name
	if len(gotName) > MaxNameSize {
		t.Errorf("name length = %d, want <= %d", len(gotName), MaxNameSize)
	}
	if !utf8.ValidString(gotName) {
		t.Error("truncated name is not valid UTF-8")
	}
	if !strings.HasPrefix(name, gotName) {
		t.Error("truncated name is not a prefix of the input")
	}
}
