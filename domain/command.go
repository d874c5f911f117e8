package domain

import (
	"errors"
	"fmt"

	"arenabot/utils"
)

// CommandSubType はcommandメッセージ（ボット → アリーナ）のサブタイプ
type CommandSubType uint8

const (
	CommandSubTypeSetColor        CommandSubType = 1
	CommandSubTypeSetGunColor     CommandSubType = 2
	CommandSubTypeSetRadarColor   CommandSubType = 3
	CommandSubTypeSetBulletsColor CommandSubType = 4
	CommandSubTypeRadarVisible    CommandSubType = 5
	CommandSubTypeLockRadar       CommandSubType = 6
	CommandSubTypeSetRadarField   CommandSubType = 7
	CommandSubTypeMove            CommandSubType = 8
	CommandSubTypeTurn            CommandSubType = 9
	CommandSubTypeGunTurn         CommandSubType = 10
	CommandSubTypeRadarTurn       CommandSubType = 11
	CommandSubTypeStop            CommandSubType = 12
	CommandSubTypeReset           CommandSubType = 13
	CommandSubTypeFire            CommandSubType = 14
	CommandSubTypePrint           CommandSubType = 15
)

// MaxPrintSize はフレーム長(u16)に収まるPrintの最大バイト数
const MaxPrintSize = 0xFFFF - PayloadHeaderSize - 2

var ErrInvalidCommandPayload = errors.New("invalid command payload")

// Command はボットからアリーナへの1命令
//
//	色      r, g, b u8 (3)
//	フラグ  u8 (1)          RadarVisible / LockRadar / SetRadarField
//	数値    f64 (8)         Move / Turn / GunTurn / RadarTurn / Fire
//	文字列  u16 長 + UTF-8   Print
//	なし                    Stop / Reset
type Command struct {
	SubType CommandSubType
	Color   [3]uint8
	Flag    uint8
	Value   float64
	Text    string
}

func (s CommandSubType) isColor() bool {
	return s >= CommandSubTypeSetColor && s <= CommandSubTypeSetBulletsColor
}

func (s CommandSubType) isFlag() bool {
	return s >= CommandSubTypeRadarVisible && s <= CommandSubTypeSetRadarField
}

func (s CommandSubType) isValue() bool {
	switch s {
	case CommandSubTypeMove, CommandSubTypeTurn, CommandSubTypeGunTurn, CommandSubTypeRadarTurn, CommandSubTypeFire:
		return true
	}
	return false
}

// Encode はCommandのペイロードをエンコードする。数値がNaN/Infのときはエラー
func (c *Command) Encode() ([]byte, error) {
	switch {
	case c.SubType.isColor():
		return []byte{c.Color[0], c.Color[1], c.Color[2]}, nil
	case c.SubType.isFlag():
		return []byte{c.Flag}, nil
	case c.SubType.isValue():
		if !utils.IsFinite(c.Value) {
			return nil, fmt.Errorf("%w: command %d value %v", ErrNonFinite, c.SubType, c.Value)
		}
		data := make([]byte, 8)
		putFloat64(data, c.Value)
		return data, nil
	case c.SubType == CommandSubTypeStop, c.SubType == CommandSubTypeReset:
		return nil, nil
	case c.SubType == CommandSubTypePrint:
		text := truncateUTF8(c.Text, MaxPrintSize)
		data := make([]byte, 2, 2+len(text))
		byteOrder.PutUint16(data, uint16(len(text)))
		return append(data, text...), nil
	}
	return nil, fmt.Errorf("%w: unknown subtype %d", ErrInvalidCommandPayload, c.SubType)
}

// ParseCommand はサブタイプに応じてコマンドペイロードをパースする
func ParseCommand(subType CommandSubType, data []byte) (*Command, error) {
	c := &Command{SubType: subType}
	switch {
	case subType.isColor():
		if len(data) < 3 {
			return nil, fmt.Errorf("%w: color needs 3 bytes, got %d", ErrInvalidCommandPayload, len(data))
		}
		copy(c.Color[:], data[:3])
	case subType.isFlag():
		if len(data) < 1 {
			return nil, fmt.Errorf("%w: flag needs 1 byte", ErrInvalidCommandPayload)
		}
		c.Flag = data[0]
	case subType.isValue():
		if len(data) < 8 {
			return nil, fmt.Errorf("%w: value needs 8 bytes, got %d", ErrInvalidCommandPayload, len(data))
		}
		c.Value = getFloat64(data[:8])
		if !utils.IsFinite(c.Value) {
			return nil, fmt.Errorf("%w: command %d value", ErrNonFinite, subType)
		}
	case subType == CommandSubTypeStop, subType == CommandSubTypeReset:
	case subType == CommandSubTypePrint:
		if len(data) < 2 {
			return nil, fmt.Errorf("%w: missing print length", ErrInvalidCommandPayload)
		}
		n := int(byteOrder.Uint16(data[:2]))
		if len(data) < 2+n {
			return nil, fmt.Errorf("%w: print needs %d bytes, got %d", ErrInvalidCommandPayload, n, len(data)-2)
		}
		c.Text = string(data[2 : 2+n])
	default:
		return nil, fmt.Errorf("%w: unknown subtype %d", ErrInvalidCommandPayload, subType)
	}
	return c, nil
}

// EncodeCommandMessage はコマンドを1メッセージにエンコードする
func EncodeCommandMessage(sessionID SessionID, seq uint16, c *Command) ([]byte, error) {
	payload, err := c.Encode()
	if err != nil {
		return nil, err
	}
	return encodeFrame(sessionID, seq, DataTypeCommand, uint8(c.SubType), payload), nil
}
