package handler

import (
	"strings"

	"donorbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start. It also serves as the universal fallback:
// sending /start from any state restarts the conversation at the menu.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	registered, err := h.donorService.IsRegistered(userID)
	if err != nil {
		// Menu still works without the profile entry
		h.logger.Error("Failed to check donor registration", zap.Error(err))
		registered = false
	}

	h.sessions.Set(userID, domain.Session{State: domain.StateMenu})

	return c.Send(
		"Welcome to the Bangladesh Blood Donation Bot! 🇧🇩\n\n"+
			"This bot helps connect blood donors with those in need. "+
			"What would you like to do?",
		mainMenuMarkup(registered),
	)
}

// senderName builds a donor display name from the Telegram account
func senderName(user *tele.User) string {
	name := strings.TrimSpace(strings.TrimSpace(user.FirstName) + " " + strings.TrimSpace(user.LastName))
	if name == "" {
		name = user.Username
	}
	return name
}
