package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// SessionID はアリーナが接続ごとに割り当てるID (UUID)
type SessionID uuid.UUID

func NewSessionID() SessionID {
	return SessionID(uuid.New())
}

func SessionIDFromBytes(b [16]byte) SessionID {
	return SessionID(b)
}

func (id SessionID) Bytes() [16]byte { return id }
func (id SessionID) IsZero() bool    { return id == SessionID{} }
func (id SessionID) String() string  { return uuid.UUID(id).String() }

// RoomID は参加するルームのID。ゼロ値は自動割り当てを意味する
type RoomID [16]byte

// ParseRoomID はUUID文字列をRoomIDに変換する。空文字はゼロ値
func ParseRoomID(s string) (RoomID, error) {
	if s == "" {
		return RoomID{}, nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return RoomID{}, fmt.Errorf("parse room id %q: %w", s, err)
	}
	return RoomID(u), nil
}

func (id RoomID) IsEmpty() bool { return id == RoomID{} }

func (id RoomID) String() string {
	if id.IsEmpty() {
		return "auto"
	}
	return uuid.UUID(id).String()
}
