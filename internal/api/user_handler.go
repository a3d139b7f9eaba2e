package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/collections-admin-api/internal/config"
	"github.com/collections-admin-api/internal/service"
	"github.com/collections-admin-api/internal/userstatus"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateLayout           = "Jan 02, 2006"
	neverActiveLabel     = "Long time"
	neverSubscribedLabel = "Never subscribed"
)

// userView is a card plus its display strings
type userView struct {
	userstatus.Card
	LastActiveLabel         string `json:"last_active_label"`
	SubscriptionExpiryLabel string `json:"subscription_expiry_label"`
	CoinsLabel              string `json:"coins_label"`
}

// UserHandler handles user endpoints
type UserHandler struct {
	services *service.Services
	paging   config.DashboardConfig
	printer  *message.Printer
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		paging:   cfg.Dashboard,
		printer:  message.NewPrinter(language.English),
		log:      log.With().Str("handler", "user").Logger(),
	}
}

// List handles GET /v1/users?limit=&offset=
func (h *UserHandler) List(c *gin.Context) {
	limit, offset, err := pagination(c, h.paging)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cards, err := h.services.User.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	views := make([]userView, 0, len(cards))
	for _, card := range cards {
		views = append(views, h.present(card))
	}

	c.JSON(http.StatusOK, gin.H{
		"users":  views,
		"limit":  limit,
		"offset": offset,
	})
}

// Get handles GET /v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")

	card, err := h.services.User.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("user_id", id).Msg("Failed to get user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, h.present(*card))
}

// Delete handles DELETE /v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.services.User.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("user_id", id).Msg("Failed to delete user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) present(card userstatus.Card) userView {
	return userView{
		Card:                    card,
		LastActiveLabel:         formatDate(card.LastActive, neverActiveLabel),
		SubscriptionExpiryLabel: formatDate(card.SubscriptionExpiry, neverSubscribedLabel),
		CoinsLabel:              h.printer.Sprintf("%d", card.Coins),
	}
}

// formatDate renders t in UTC, or fallback when t is nil
func formatDate(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.UTC().Format(dateLayout)
}
