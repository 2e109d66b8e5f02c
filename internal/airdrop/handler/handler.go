package handler

import (
	"net/http"
	"time"

	"dropz-server/internal/airdrop/processor"
	"dropz-server/internal/apierrors"
	"dropz-server/internal/observability"
	"dropz-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AirdropProcessor
	logger    *observability.Logger
}

func New(processor processor.AirdropProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TaskRequest represents one task in a create request
type TaskRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  *string `json:"description,omitempty"`
	Kind         string  `json:"kind" binding:"required,oneof=follow retweet like comment external custom"`
	URL          *string `json:"url,omitempty" binding:"omitempty,url"`
	RewardAmount *string `json:"reward_amount,omitempty"`
}

// CreateAirdropRequest represents the HTTP request for creating an airdrop
type CreateAirdropRequest struct {
	Owner               string        `json:"owner" binding:"required"`
	Name                string        `json:"name" binding:"required,max=255"`
	TokenAddress        string        `json:"token_address" binding:"required"`
	TotalAmount         string        `json:"total_amount" binding:"required"`
	Tasks               []TaskRequest `json:"tasks,omitempty"`
	TaskRewardAmount    *string       `json:"task_reward_amount,omitempty"`
	CheckinRewardAmount *string       `json:"checkin_reward_amount,omitempty"`
	Metadata            *store.JSONB  `json:"metadata,omitempty"`
	ExpiresAt           *string       `json:"expires_at,omitempty"`
}

// UpdateStatusRequest represents the HTTP request for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ParticipantRequest identifies the acting wallet in the request body
type ParticipantRequest struct {
	Wallet string `json:"wallet" binding:"required"`
}

// CompleteTaskRequest represents the HTTP request for completing a task
type CompleteTaskRequest struct {
	Wallet string `json:"wallet" binding:"required"`
	TaskID string `json:"task_id" binding:"required"`
}

// ClaimRequest represents the HTTP request for claiming earnings
type ClaimRequest struct {
	Wallet      string   `json:"wallet" binding:"required"`
	MerkleProof []string `json:"merkle_proof,omitempty"`
}

// HandleCreateAirdrop creates a new airdrop campaign
func (h *Handler) HandleCreateAirdrop(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateAirdropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	var expiresAt *time.Time
	if req.ExpiresAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			h.logger.Error(ctx, "failed to parse expires_at", err)
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid expires_at format, expected RFC3339"))
			return
		}
		expiresAt = &parsed
	}

	tasks := make([]store.Task, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		tasks = append(tasks, store.Task{
			Title:        task.Title,
			Description:  task.Description,
			Kind:         task.Kind,
			URL:          task.URL,
			RewardAmount: task.RewardAmount,
		})
	}

	metadata := store.JSONB{}
	if req.Metadata != nil {
		metadata = *req.Metadata
	}

	airdrop, err := h.processor.CreateAirdrop(ctx, processor.CreateAirdropRequest{
		Owner:               req.Owner,
		Name:                req.Name,
		TokenAddress:        req.TokenAddress,
		TotalAmount:         req.TotalAmount,
		Tasks:               tasks,
		TaskRewardAmount:    req.TaskRewardAmount,
		CheckinRewardAmount: req.CheckinRewardAmount,
		Metadata:            metadata,
		ExpiresAt:           expiresAt,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, airdrop)
}

// HandleListAirdrops lists all airdrop campaigns
func (h *Handler) HandleListAirdrops(c *gin.Context) {
	airdrops, err := h.processor.ListAirdrops(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, airdrops)
}

// HandleSearchAirdrops lists campaigns matching a name substring
func (h *Handler) HandleSearchAirdrops(c *gin.Context) {
	query := c.Query("q")
	airdrops, err := h.processor.SearchAirdrops(c.Request.Context(), query)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, airdrops)
}

// HandleGetAirdrop retrieves one campaign
func (h *Handler) HandleGetAirdrop(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	airdrop, err := h.processor.GetAirdrop(c.Request.Context(), airdropID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, airdrop)
}

// HandleGetAirdropsByOwner lists campaigns created by one owner
func (h *Handler) HandleGetAirdropsByOwner(c *gin.Context) {
	owner := c.Param("owner")
	airdrops, err := h.processor.GetAirdropsByOwner(c.Request.Context(), owner)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, airdrops)
}

// HandleUpdateStatus moves a campaign to a new status
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	airdrop, err := h.processor.UpdateStatus(c.Request.Context(), airdropID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, airdrop)
}

// HandleJoin enrolls a wallet in a campaign
func (h *Handler) HandleJoin(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	var req ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	participant, err := h.processor.Join(c.Request.Context(), airdropID, req.Wallet)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// HandleCompleteTask credits a task reward to a participant
func (h *Handler) HandleCompleteTask(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	participant, err := h.processor.CompleteTask(c.Request.Context(), airdropID, req.Wallet, req.TaskID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// HandleDailyCheckin credits a daily check-in reward to a participant
func (h *Handler) HandleDailyCheckin(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	var req ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	participant, err := h.processor.DailyCheckin(c.Request.Context(), airdropID, req.Wallet)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// HandleClaim settles a participant's accrued earnings
func (h *Handler) HandleClaim(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.ClaimEarnings(c.Request.Context(), airdropID, req.Wallet, req.MerkleProof)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleListParticipants lists every participant of a campaign
func (h *Handler) HandleListParticipants(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	participants, err := h.processor.ListParticipants(c.Request.Context(), airdropID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// HandleGetParticipant retrieves one participant's state
func (h *Handler) HandleGetParticipant(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	participant, err := h.processor.GetParticipant(c.Request.Context(), airdropID, c.Param("wallet"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// HandleGetClaimableAmount reports a wallet's claimable balance
func (h *Handler) HandleGetClaimableAmount(c *gin.Context) {
	airdropID, ok := h.getAirdropID(c)
	if !ok {
		return
	}

	claimable, err := h.processor.GetClaimableAmount(c.Request.Context(), airdropID, c.Param("wallet"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claimable)
}

func (h *Handler) getAirdropID(c *gin.Context) (uuid.UUID, bool) {
	airdropID, err := uuid.Parse(c.Param("airdrop_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid airdrop ID format"))
		return uuid.UUID{}, false
	}
	return airdropID, true
}
