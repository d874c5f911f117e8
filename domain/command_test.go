package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCommandMessages(t *testing.T) {
	commands := []Command{
		{SubType: CommandSubTypeSetColor, Color: [3]uint8{138, 43, 226}},
		{SubType: CommandSubTypeSetBulletsColor, Color: [3]uint8{255, 0, 255}},
		{SubType: CommandSubTypeRadarVisible, Flag: 1},
		{SubType: CommandSubTypeLockRadar, Flag: 2},
		{SubType: CommandSubTypeSetRadarField, Flag: 3},
		{SubType: CommandSubTypeMove, Value: -10},
		{SubType: CommandSubTypeTurn, Value: 90},
		{SubType: CommandSubTypeGunTurn, Value: -90},
		{SubType: CommandSubTypeRadarTurn, Value: 45.5},
		{SubType: CommandSubTypeFire, Value: 2},
		{SubType: CommandSubTypeStop},
		{SubType: CommandSubTypeReset},
		{SubType: CommandSubTypePrint, Text: "Reached lower boundary"},
	}

	id := NewSessionID()
	for _, want := range commands {
		data, err := EncodeCommandMessage(id, 42, &want)
		if err != nil {
			t.Fatalf("EncodeCommandMessage(%d) failed: %v", want.SubType, err)
		}
		frame, err := ParseFrame(data)
		if err != nil {
			t.Fatalf("ParseFrame(%d) failed: %v", want.SubType, err)
		}
		if frame.PayloadHeader.DataType != DataTypeCommand {
			t.Errorf("DataType = %d, want command", frame.PayloadHeader.DataType)
		}
		got, err := ParseCommand(CommandSubType(frame.PayloadHeader.SubType), frame.Payload)
		if err != nil {
			t.Fatalf("ParseCommand(%d) failed: %v", want.SubType, err)
		}
		if *got != want {
			t.Errorf("command = %+v, want %+v", *got, want)
		}
	}
}

func TestCommand_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c := &Command{SubType: CommandSubTypeMove, Value: v}
		if _, err := EncodeCommandMessage(NewSessionID(), 0, c); !errors.Is(err, ErrNonFinite) {
			t.Errorf("Move(%v): err = %v, want ErrNonFinite", v, err)
		}
	}
}

func TestCommand_Unknown(t *testing.T) {
	c := &Command{SubType: CommandSubType(200)}
	if _, err := c.Encode(); !errors.Is(err, ErrInvalidCommandPayload) {
		t.Errorf("Encode: err = %v, want ErrInvalidCommandPayload", err)
	}
	if _, err := ParseCommand(CommandSubType(200), nil); !errors.Is(err, ErrInvalidCommandPayload) {
		t.Errorf("Parse: err = %v, want ErrInvalidCommandPayload", err)
	}
}

func TestParseCommand_Truncated(t *testing.T) {
	tests := []struct {
		sub  CommandSubType
		data []byte
	}{
		{CommandSubTypeSetGunColor, []byte{1, 2}},
		{CommandSubTypeLockRadar, nil},
		{CommandSubTypeFire, make([]byte, 7)},
		{CommandSubTypePrint, []byte{1}},
		{CommandSubTypePrint, []byte{5, 0, 'a'}},
	}
	for _, tt := range tests {
		if _, err := ParseCommand(tt.sub, tt.data); !errors.Is(err, ErrInvalidCommandPayload) {
			t.Errorf("ParseCommand(%d, %v): err = %v, want ErrInvalidCommandPayload", tt.sub, tt.data, err)
		}
	}
}

func TestCommand_PrintTruncated(t *testing.T) {
	c := &Command{SubType: CommandSubTypePrint, Text: strings.Repeat("x", MaxPrintSize+10)}

	data, err := EncodeCommandMessage(NewSessionID(), 0, c)
	if err != nil {
		t.Fatalf("EncodeCommandMessage failed: %v", err)
	}
	frame, err := ParseFrame(data)
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	got, err := ParseCommand(CommandSubTypePrint, frame.Payload)
	if err != nil {
		t.Fatalf("ParseCommand failed: %v", err)
	}
	if len(got.Text) != MaxPrintSize {
		t.Errorf("text length = %d, want %d", len(got.Text), MaxPrintSize)
	}
}
