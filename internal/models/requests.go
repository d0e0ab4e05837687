package models

import (
	"fmt"
	"math"
)

// Bet amount bounds, inclusive.
const (
	MinBetAmount = 2
	MaxBetAmount = 200
)

// SessionRequest opens or closes a session. UserID may be empty on open, in
// which case the server generates one.
type SessionRequest struct {
	UserID string `json:"user_id"`
}

// BetRequest is one progressive step. The run itself lives client-side; the
// client replays its position through BetStep on every call. Balance is the
// optional client-reported figure used only for the sufficiency check, and
// Tag is free-form and echoed back untouched.
type BetRequest struct {
	UserID    string   `json:"user_id"`
	BetAmount float64  `json:"bet_amount"`
	BetLevel  string   `json:"bet_level"`
	BetStep   int      `json:"bet_step"`
	Balance   *float64 `json:"balance,omitempty"`
	Tag       string   `json:"tag,omitempty"`
}

func (br *BetRequest) Validate() error {
	if br.UserID == "" {
		return fmt.Errorf("invalid userId")
	}
	if math.IsNaN(br.BetAmount) || math.IsInf(br.BetAmount, 0) {
		return fmt.Errorf("invalid bet amount")
	}
	if br.BetAmount < MinBetAmount {
		return fmt.Errorf("min bet amount is %d", MinBetAmount)
	}
	if br.BetAmount > MaxBetAmount {
		return fmt.Errorf("max bet amount is %d", MaxBetAmount)
	}
	if br.BetStep < 1 {
		return fmt.Errorf("invalid bet step")
	}
	return nil
}

type CashoutRequest struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

func (cr *CashoutRequest) Validate() error {
	if cr.UserID == "" {
		return fmt.Errorf("invalid userId")
	}
	if math.IsNaN(cr.Amount) || math.IsInf(cr.Amount, 0) || cr.Amount <= 0 {
		return fmt.Errorf("invalid amount")
	}
	return nil
}
