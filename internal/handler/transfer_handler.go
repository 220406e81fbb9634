package handler

import (
	"net/http"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/middleware"
	"github.com/grachmannico95/transfer-engine/internal/service"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TransferHandler struct {
	service service.TransferService
	logger  *logger.Logger
}

func NewTransferHandler(service service.TransferService, log *logger.Logger) *TransferHandler {
	return &TransferHandler{
		service: service,
		logger:  log,
	}
}

type createTransferRequest struct {
	SourceAccountID      string          `json:"source_account_id"`
	DestinationAccountID string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
	Kind                 string          `json:"kind"`
}

type reverseTransferRequest struct {
	TransferID string          `json:"transfer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}

func (h *TransferHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	creds, ok := middleware.GetCredentials(c)
	if !ok {
		return respondError(c, h.logger, domain.ErrAuthenticationFailed)
	}

	var req createTransferRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.SourceAccountID == "" || req.DestinationAccountID == "" {
		return badRequest(c, "source_account_id and destination_account_id are required")
	}

	kind, err := domain.ParseTransferKind(req.Kind)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	record, err := h.service.FundsTransfer(ctx, service.TransferRequest{
		Credentials:          creds,
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               req.Amount,
		Kind:                 kind,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, record)
}

func (h *TransferHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	record, err := h.service.FindTransaction(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, record)
}

func (h *TransferHandler) Reverse(c echo.Context) error {
	ctx := c.Request().Context()

	var req reverseTransferRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.TransferID == "" {
		return badRequest(c, "transfer_id is required")
	}

	record, err := h.service.ReversalTransaction(ctx, service.ReversalRequest{
		TransferID: req.TransferID,
		Amount:     req.Amount,
		Reason:     req.Reason,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, record)
}
