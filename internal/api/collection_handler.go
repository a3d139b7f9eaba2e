package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/collections-admin-api/internal/config"
	"github.com/collections-admin-api/internal/form"
	"github.com/collections-admin-api/internal/models"
	"github.com/collections-admin-api/internal/service"
	"github.com/collections-admin-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CollectionHandler handles collection endpoints
type CollectionHandler struct {
	services *service.Services
	paging   config.DashboardConfig
	log      zerolog.Logger
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *CollectionHandler {
	return &CollectionHandler{
		services: services,
		paging:   cfg.Dashboard,
		log:      log.With().Str("handler", "collection").Logger(),
	}
}

// Options handles GET /v1/collections/options
func (h *CollectionHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Collection.Options())
}

// List handles GET /v1/collections?limit=&offset=
func (h *CollectionHandler) List(c *gin.Context) {
	limit, offset, err := pagination(c, h.paging)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collections, err := h.services.Collection.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list collections")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list collections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"collections": collections,
		"limit":       limit,
		"offset":      offset,
	})
}

// Get handles GET /v1/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := collectionID(c)
	if !ok {
		return
	}

	collection, err := h.services.Collection.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrCollectionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("collection_id", id).Msg("Failed to get collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get collection"})
		return
	}

	c.JSON(http.StatusOK, collection)
}

// Create handles POST /v1/collections
func (h *CollectionHandler) Create(c *gin.Context) {
	in, ok := bindCollection(c)
	if !ok {
		return
	}

	outcome, err := h.services.Collection.Create(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, outcome, err)
}

// Update handles PUT /v1/collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := collectionID(c)
	if !ok {
		return
	}
	in, ok := bindCollection(c)
	if !ok {
		return
	}

	outcome, err := h.services.Collection.Update(c.Request.Context(), id, in)
	h.respond(c, http.StatusOK, outcome, err)
}

// Delete handles DELETE /v1/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := collectionID(c)
	if !ok {
		return
	}

	err := h.services.Collection.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrCollectionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("collection_id", id).Msg("Failed to delete collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete collection"})
		return
	}

	c.Status(http.StatusNoContent)
}

// respond maps a form submission result to a status code
func (h *CollectionHandler) respond(c *gin.Context, okStatus int, outcome *form.Outcome, err error) {
	var (
		verrs validation.Errors
		perr  *form.PersistenceError
	)

	switch {
	case err == nil:
		c.JSON(okStatus, gin.H{
			"collection":   outcome.Collection,
			"notification": outcome.Notification,
		})
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": verrs.Map(),
		})
	case errors.Is(err, service.ErrCollectionNotFound):
		body := gin.H{"error": "collection not found"}
		if outcome != nil {
			body["notification"] = outcome.Notification
		}
		c.JSON(http.StatusNotFound, body)
	case errors.Is(err, form.ErrSubmitPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &perr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":        "failed to save collection",
			"notification": outcome.Notification,
		})
	default:
		h.log.Error().Err(err).Msg("Collection submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindCollection decodes the body and rejects values outside the vocabulary
func bindCollection(c *gin.Context) (models.CollectionInput, bool) {
	var in models.CollectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return in, false
	}

	if errs := validation.ValidateVocabulary(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid collection values",
			"details": errs,
		})
		return in, false
	}
	return in, true
}

func collectionID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !validation.IsValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection id"})
		return "", false
	}
	return id, true
}

// pagination reads limit and offset, clamping limit to the configured maximum
func pagination(c *gin.Context, cfg config.DashboardConfig) (int, int, error) {
	limit := cfg.DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return 0, 0, errors.New("limit must be a positive integer")
		}
		limit = n
	}
	if cfg.MaxPageSize > 0 && limit > cfg.MaxPageSize {
		limit = cfg.MaxPageSize
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
		offset = n
	}
	return limit, offset, nil
}
