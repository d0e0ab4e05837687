package models

import "time"

// DefaultBalance is credited to every freshly created user.
const DefaultBalance = 100000.00

// User is the authoritative per-player record. A session is an account here,
// so the stored balance is the single source of truth for gameplay; clients
// may mirror it but the server never trusts the mirror for anything beyond
// the optional sufficiency check on bets.
type User struct {
	UserID    string    `json:"user_id" redis:"user_id"`
	Balance   float64   `json:"balance" redis:"balance"`
	CreatedAt time.Time `json:"created_at" redis:"created_at"`
	UpdatedAt time.Time `json:"updated_at" redis:"updated_at"`
}

func NewUser(userID string) *User {
	now := time.Now()
	return &User{
		UserID:    userID,
		Balance:   DefaultBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
