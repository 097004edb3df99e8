package core

import "fmt"

// PlayerID identifies a seat at the keyboard, zero-based
type PlayerID uint8

const (
	Player1 PlayerID = iota
	Player2

	// PlayerCount is the number of seats the arena is built for
	PlayerCount = 2
)

// String returns the one-based display name used in logs and config keys
func (p PlayerID) String() string {
	return fmt.Sprintf("player%d", int(p)+1)
}

// Players returns all seats in update order
func Players() []PlayerID {
	return []PlayerID{Player1, Player2}
}
