package leaderboard

import (
	"errors"
	"net/http"
	"strconv"

	"dropz-server/internal/apierrors"
	"dropz-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultTopLimit = 25
const maxTopLimit = 100

// Handler exposes airdrop leaderboards over HTTP
type Handler struct {
	service Service
	logger  *observability.Logger
}

func NewHandler(service Service, logger *observability.Logger) Handler {
	return Handler{service: service, logger: logger}
}

// HandleGetLeaderboard returns the top wallets of an airdrop by earnings.
// Supports ?limit=N and ?refresh=true to force a rebuild from the database.
func (h *Handler) HandleGetLeaderboard(c *gin.Context) {
	airdropID, err := uuid.Parse(c.Param("airdrop_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid airdrop ID format"))
		return
	}

	limit := defaultTopLimit
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = min(parsed, maxTopLimit)
	}

	ctx := c.Request.Context()
	if c.Query("refresh") == "true" {
		h.service.Invalidate(ctx, airdropID)
	}

	entries, err := h.service.GetTop(ctx, airdropID, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"airdrop_id": airdropID, "entries": entries})
}

// HandleGetWalletRank returns one wallet's position in an airdrop's board
func (h *Handler) HandleGetWalletRank(c *gin.Context) {
	airdropID, err := uuid.Parse(c.Param("airdrop_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid airdrop ID format"))
		return
	}

	entry, err := h.service.GetRank(c.Request.Context(), airdropID, c.Param("wallet"))
	if errors.Is(err, ErrWalletNotRanked) {
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeParticipantNotFound, "Wallet not present in leaderboard"))
		return
	}
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
