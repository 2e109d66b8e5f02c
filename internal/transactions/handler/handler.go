package handler

import (
	"net/http"

	"dropz-server/internal/apierrors"
	"dropz-server/internal/observability"
	"dropz-server/internal/store"
	"dropz-server/internal/transactions/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.TransactionProcessor
	logger    *observability.Logger
}

func New(processor processor.TransactionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateTransactionRequest represents the HTTP request for recording a transaction
type CreateTransactionRequest struct {
	Wallet          string  `json:"wallet" binding:"required"`
	Type            string  `json:"type" binding:"required,oneof=SEND CLAIM CREATE DEPOSIT"`
	Amount          string  `json:"amount" binding:"required"`
	Recipient       *string `json:"recipient,omitempty"`
	TokenName       *string `json:"token_name,omitempty"`
	TransactionHash *string `json:"transaction_hash,omitempty"`
	Status          *string `json:"status,omitempty" binding:"omitempty,oneof=pending success failed"`
}

// HandleCreateTransaction records one audit-log entry
func (h *Handler) HandleCreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	amount, err := store.NewBigAmount(req.Amount)
	if err != nil {
		apierrors.RespondWithError(c, processor.ErrInvalidAmount)
		return
	}

	status := ""
	if req.Status != nil {
		status = *req.Status
	}

	transaction, err := h.processor.RecordTransaction(c.Request.Context(), store.CreateTransactionParams{
		Wallet:          req.Wallet,
		Type:            req.Type,
		Amount:          amount,
		Recipient:       req.Recipient,
		TokenName:       req.TokenName,
		TransactionHash: req.TransactionHash,
		Status:          status,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// HandleGetWalletHistory retrieves a wallet's recent transactions
func (h *Handler) HandleGetWalletHistory(c *gin.Context) {
	transactions, err := h.processor.GetWalletHistory(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}
