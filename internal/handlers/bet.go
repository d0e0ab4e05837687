package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chicken-road-backend/internal/game"
	"chicken-road-backend/internal/models"
	"chicken-road-backend/internal/store"
)

type BetHandler struct {
	store  store.SessionStore
	engine *game.Engine
}

func NewBetHandler(store store.SessionStore, engine *game.Engine) *BetHandler {
	return &BetHandler{store: store, engine: engine}
}

// Resolve settles one progressive step. It reads the stored balance, draws
// the outcome and returns the settlement preview; it never writes the store.
// Earnings only become real when the client cashes out.
func (h *BetHandler) Resolve(c *gin.Context) {
	var req models.BetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	log.Printf("[BET] request: user_id=%s amount=%.2f level=%s step=%d tag=%q",
		req.UserID, req.BetAmount, req.BetLevel, req.BetStep, req.Tag)

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := game.ParseLevel(req.BetLevel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.Find(c.Request.Context(), req.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("[BET] store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// The client may report its local balance; it is checked for stake
	// sufficiency only and never written back.
	checkedBalance := user.Balance
	if req.Balance != nil {
		checkedBalance = *req.Balance
	}
	if checkedBalance < req.BetAmount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
		return
	}

	outcome := h.engine.Resolve(level, req.BetStep)
	settlement := game.Settle(outcome.Result, req.BetAmount, outcome.Multiplier, user.Balance)

	earningAmount := 0.0
	if outcome.Result == game.ResultWin {
		earningAmount = settlement.WinAmount
	}

	log.Printf("[BET] result: user_id=%s step=%d multiplier=%.2f draw=%.6f win_pct=%.4f result=%s",
		req.UserID, req.BetStep, outcome.Multiplier, outcome.RandomValue,
		outcome.WinProbabilityPercent, outcome.Result)

	c.JSON(http.StatusOK, gin.H{
		"user_id":                  req.UserID,
		"balance":                  user.Balance,
		"result":                   outcome.Result,
		"multiplier":               outcome.Multiplier,
		"win_probability_percent":  outcome.WinProbabilityPercent,
		"lose_probability_percent": outcome.LoseProbabilityPercent,
		"random_draw":              outcome.RandomValue,
		"projected_win_amount":     settlement.WinAmount,
		"projected_loss_amount":    settlement.LossAmount,
		"earning_amount":           earningAmount,
		"bet_amount":               req.BetAmount,
		"bet_level":                req.BetLevel,
		"bet_step":                 req.BetStep,
		"tag":                      req.Tag,
	})
}

// Cashout is the only path that durably credits gameplay earnings. It is
// deliberately additive rather than idempotent: two completed cashouts of 50
// credit 100.
func (h *BetHandler) Cashout(c *gin.Context) {
	var req models.CashoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	log.Printf("[CASHOUT] request: user_id=%s amount=%.2f", req.UserID, req.Amount)

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.AdjustBalance(c.Request.Context(), req.UserID, req.Amount)
	if errors.Is(err, store.ErrUserNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("[CASHOUT] store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	log.Printf("[CASHOUT] response: user_id=%s balance=%.2f", user.UserID, user.Balance)
	c.JSON(http.StatusOK, gin.H{
		"user_id": user.UserID,
		"balance": user.Balance,
	})
}
