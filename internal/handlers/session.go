package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chicken-road-backend/internal/models"
	"chicken-road-backend/internal/store"
)

type SessionHandler struct {
	store store.SessionStore
}

func NewSessionHandler(store store.SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

// Open creates a demo user when the id is unseen (or blank) and returns the
// current record otherwise. Re-opening an existing session changes nothing.
func (h *SessionHandler) Open(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// an absent body opens an anonymous session
		req = models.SessionRequest{}
	}

	log.Printf("[SESSION] open request: user_id=%q", req.UserID)

	user, err := h.store.OpenOrCreate(c.Request.Context(), req.UserID)
	if err != nil {
		log.Printf("[SESSION] open error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	log.Printf("[SESSION] response: user_id=%s balance=%.2f", user.UserID, user.Balance)
	c.JSON(http.StatusOK, gin.H{
		"user_id": user.UserID,
		"balance": user.Balance,
	})
}

// Close deletes the user record. The client fires this on page unload, which
// can race or repeat, so deleting an absent id still succeeds.
func (h *SessionHandler) Close(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = models.SessionRequest{}
	}

	log.Printf("[SESSION] delete request: user_id=%q", req.UserID)

	if req.UserID != "" {
		existed, err := h.store.Delete(c.Request.Context(), req.UserID)
		if err != nil {
			log.Printf("[SESSION] delete error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if existed {
			log.Printf("[SESSION] deleted user: %s", req.UserID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
