package handler

import (
	"net/http"

	"github.com/grachmannico95/transfer-engine/internal/service"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type DirectoryHandler struct {
	service service.DirectoryService
	logger  *logger.Logger
}

func NewDirectoryHandler(service service.DirectoryService, log *logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		logger:  log,
	}
}

type createOwnerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Secret  string `json:"secret"`
}

type updateOwnerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Secret  *string `json:"secret"`
}

type createAccountRequest struct {
	OwnerID        string          `json:"owner_id"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Currency       string          `json:"currency"`
	AccountType    string          `json:"account_type"`
}

func (h *DirectoryHandler) CreateOwner(c echo.Context) error {
	var req createOwnerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	owner, err := h.service.CreateOwner(c.Request().Context(), service.CreateOwnerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Secret:  req.Secret,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, owner)
}

func (h *DirectoryHandler) GetOwner(c echo.Context) error {
	profile, err := h.service.GetOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *DirectoryHandler) UpdateOwner(c echo.Context) error {
	var req updateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	owner, err := h.service.UpdateOwner(c.Request().Context(), c.Param("id"), service.UpdateOwnerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Secret:  req.Secret,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, owner)
}

func (h *DirectoryHandler) ListOwnerAccounts(c echo.Context) error {
	accounts, err := h.service.ListAccountsByOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"owner_id": c.Param("id"),
		"accounts": accounts,
	})
}

func (h *DirectoryHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	account, err := h.service.CreateAccount(c.Request().Context(), service.CreateAccountInput{
		OwnerID:        req.OwnerID,
		InitialBalance: req.InitialBalance,
		Currency:       req.Currency,
		AccountType:    req.AccountType,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, account)
}

func (h *DirectoryHandler) GetAccount(c echo.Context) error {
	account, err := h.service.GetAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, account)
}
