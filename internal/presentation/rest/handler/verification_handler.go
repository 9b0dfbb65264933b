package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"online-payments/internal/application/gateway"
)

// VerificationHandler カード検証ハンドラー
type VerificationHandler struct {
	service *gateway.Service
}

// NewVerificationHandler 新しいVerificationHandlerを作成
func NewVerificationHandler(service *gateway.Service) *VerificationHandler {
	return &VerificationHandler{
		service: service,
	}
}

// CreateVerification POST /verifications
func (h *VerificationHandler) CreateVerification(c echo.Context) error {
	req, err := createRequest(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreateVerification(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return created(c, result)
}

// GetVerification GET /verifications?requestIdentifier=
func (h *VerificationHandler) GetVerification(c echo.Context) error {
	result, err := h.service.GetVerification(c.Request().Context(), getRequest(c))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, result.Body)
}

// GetVerificationByID GET /verifications/:id
func (h *VerificationHandler) GetVerificationByID(c echo.Context) error {
	result, err := h.service.GetVerificationByID(c.Request().Context(), getByIDRequest(c))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, result.Body)
}
