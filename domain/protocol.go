package domain

import (
	"encoding/binary"
	"errors"
	"time"
)

// バイトオーダー: リトルエンディアン
var byteOrder = binary.LittleEndian

const (
	ProtocolVersion   = 1
	HeaderSize        = 25
	PayloadHeaderSize = 2
	JoinPayloadSize   = 16
)

// Header はメッセージヘッダー (25バイト)
//
//	version    u8      (1)
//	sessionID  [16]byte (16)
//	seq        u16     (2)
//	length     u16     (2)  - ペイロードヘッダーを含むペイロード長
//	timestamp  u32     (4)
type Header struct {
	Version   uint8
	SessionID [16]byte
	Seq       uint16
	Length    uint16
	Timestamp uint32
}

// DataType はメッセージの種別
type DataType uint8

const (
	DataTypeControl DataType = 4
	DataTypeEvent   DataType = 8 // アリーナ → ボット
	DataTypeCommand DataType = 9 // ボット → アリーナ
)

// ControlSubType はcontrolメッセージのサブタイプ
type ControlSubType uint8

const (
	ControlSubTypeJoin   ControlSubType = 1
	ControlSubTypeLeave  ControlSubType = 2
	ControlSubTypeKick   ControlSubType = 3
	ControlSubTypePing   ControlSubType = 4
	ControlSubTypePong   ControlSubType = 5
	ControlSubTypeError  ControlSubType = 6
	ControlSubTypeAssign ControlSubType = 7
)

// PayloadHeader はペイロードヘッダー (2バイト)
//
//	datatype  u8 (1)
//	subtype   u8 (1)
type PayloadHeader struct {
	DataType DataType
	SubType  uint8
}

var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidPayloadSize = errors.New("invalid payload size")
)

// ParseHeader はバイト列からHeaderをパースする
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, ErrInvalidHeaderSize
	}

	var sessionID [16]byte
	copy(sessionID[:], data[1:17])

	return &Header{
		Version:   data[0],
		SessionID: sessionID,
		Seq:       byteOrder.Uint16(data[17:19]),
		Length:    byteOrder.Uint16(data[19:21]),
		Timestamp: byteOrder.Uint32(data[21:25]),
	}, nil
}

// Encode はHeaderをバイト列にエンコードする
func (h *Header) Encode() []byte {
	data := make([]byte, HeaderSize)
	h.put(data)
	return data
}

func (h *Header) put(data []byte) {
	data[0] = h.Version
	copy(data[1:17], h.SessionID[:])
	byteOrder.PutUint16(data[17:19], h.Seq)
	byteOrder.PutUint16(data[19:21], h.Length)
	byteOrder.PutUint32(data[21:25], h.Timestamp)
}

// ParsePayloadHeader はバイト列からPayloadHeaderをパースする
func ParsePayloadHeader(data []byte) (*PayloadHeader, error) {
	if len(data) < PayloadHeaderSize {
		return nil, ErrInvalidPayloadSize
	}

	return &PayloadHeader{
		DataType: DataType(data[0]),
		SubType:  data[1],
	}, nil
}

// Encode はPayloadHeaderをバイト列にエンコードする
func (p *PayloadHeader) Encode() []byte {
	return []byte{byte(p.DataType), p.SubType}
}

// Frame は受信した1メッセージをヘッダーとペイロード本体に分解したもの
type Frame struct {
	Header        Header
	PayloadHeader PayloadHeader
	Payload       []byte // ペイロードヘッダーより後ろ
}

// ParseFrame はヘッダー・ペイロードヘッダーを読み、Lengthの範囲でペイロードを切り出す
func ParseFrame(data []byte) (*Frame, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	end := HeaderSize + int(header.Length)
	if header.Length < PayloadHeaderSize || end > len(data) {
		return nil, ErrInvalidPayloadSize
	}
	payloadHeader, err := ParsePayloadHeader(data[HeaderSize:end])
	if err != nil {
		return nil, err
	}
	return &Frame{
		Header:        *header,
		PayloadHeader: *payloadHeader,
		Payload:       data[HeaderSize+PayloadHeaderSize : end],
	}, nil
}

// encodeFrame はヘッダー・ペイロードヘッダー・ペイロードを1つのメッセージにまとめる
func encodeFrame(sessionID SessionID, seq uint16, dataType DataType, subType uint8, payload []byte) []byte {
	length := PayloadHeaderSize + len(payload)
	header := Header{
		Version:   ProtocolVersion,
		SessionID: sessionID.Bytes(),
		Seq:       seq,
		Length:    uint16(length),
		Timestamp: uint32(time.Now().UnixMilli() & 0xFFFFFFFF),
	}

	data := make([]byte, HeaderSize+length)
	header.put(data[:HeaderSize])
	data[HeaderSize] = byte(dataType)
	data[HeaderSize+1] = subType
	copy(data[HeaderSize+PayloadHeaderSize:], payload)
	return data
}

func encodeControl(sessionID SessionID, seq uint16, subType ControlSubType, payload []byte) []byte {
	return encodeFrame(sessionID, seq, DataTypeControl, uint8(subType), payload)
}

// EncodeAssignMessage はセッションID通知メッセージをエンコードする
func EncodeAssignMessage(sessionID SessionID) []byte {
	return encodeControl(sessionID, 0, ControlSubTypeAssign, nil)
}

// EncodePingMessage はPingメッセージをエンコードする
func EncodePingMessage(sessionID SessionID) []byte {
	return encodeControl(sessionID, 0, ControlSubTypePing, nil)
}

// EncodePongMessage はPingへの応答をエンコードする
func EncodePongMessage(sessionID SessionID, seq uint16) []byte {
	return encodeControl(sessionID, seq, ControlSubTypePong, nil)
}

// EncodeLeaveMessage はルーム離脱メッセージをエンコードする
// 終了時にアリーナへ離脱を通知するために使用
func EncodeLeaveMessage(sessionID SessionID, seq uint16) []byte {
	return encodeControl(sessionID, seq, ControlSubTypeLeave, nil)
}

// EncodeJoinMessage はルーム参加メッセージをエンコードする
// roomIDが空の場合はアリーナ側で自動割り当てされる
func EncodeJoinMessage(sessionID SessionID, seq uint16, roomID RoomID) []byte {
	payload := JoinPayload{RoomID: roomID}
	return encodeControl(sessionID, seq, ControlSubTypeJoin, payload.Encode())
}

// JoinPayload はルーム参加メッセージのペイロード (16バイト)
//
//	roomID  [16]byte  - ルームID (UUID)
type JoinPayload struct {
	RoomID RoomID
}

var ErrInvalidJoinPayloadSize = errors.New("invalid join payload size")

// ParseJoinPayload はバイト列からJoinPayloadをパースする
func ParseJoinPayload(data []byte) (*JoinPayload, error) {
	if len(data) < JoinPayloadSize {
		return nil, ErrInvalidJoinPayloadSize
	}

	var roomID RoomID
	copy(roomID[:], data[:JoinPayloadSize])

	return &JoinPayload{
		RoomID: roomID,
	}, nil
}

// Encode はJoinPayloadをバイト列にエンコードする
func (j *JoinPayload) Encode() []byte {
	out := make([]byte, JoinPayloadSize)
	copy(out, j.RoomID[:])
	return out
}
