package voiceorder

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
	log     zerolog.Logger
}

func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

type parseRequest struct {
	Transcript string `json:"transcript"`
}

type confirmRequest struct {
	Transcript string         `json:"transcript"`
	Overrides  map[int]string `json:"overrides"`
	Cart       []CartLine     `json:"cart"`
}

// --------------------------------------------------
// POST /orders/voice/parse
// --------------------------------------------------
func (h *Handler) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	items, err := h.service.Parse(c.Request.Context(), req.Transcript)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info().
		Int("phrases", len(items)).
		Msg("voice transcript parsed")

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// POST /orders/voice/confirm
// --------------------------------------------------
func (h *Handler) Confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cart, added, skipped, err := h.service.Confirm(
		c.Request.Context(),
		req.Transcript,
		req.Overrides,
		req.Cart,
	)
	if err != nil {
		if errors.Is(err, ErrUnknownMenuItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if cart == nil {
		cart = []CartLine{}
	}

	h.log.Info().
		Int("added", added).
		Int("skipped", skipped).
		Msg("voice items merged into cart")

	c.JSON(http.StatusOK, gin.H{
		"cart":    cart,
		"added":   added,
		"skipped": skipped,
	})
}
