package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"online-payments/internal/application/gateway"
)

// RefundHandler 返金ハンドラー
type RefundHandler struct {
	service *gateway.Service
}

// NewRefundHandler 新しいRefundHandlerを作成
func NewRefundHandler(service *gateway.Service) *RefundHandler {
	return &RefundHandler{
		service: service,
	}
}

// CreateRefund POST /refunds
func (h *RefundHandler) CreateRefund(c echo.Context) error {
	req, err := createRequest(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreateRefund(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return created(c, result)
}

// GetRefund GET /refunds?requestIdentifier=
func (h *RefundHandler) GetRefund(c echo.Context) error {
	result, err := h.service.GetRefund(c.Request().Context(), getRequest(c))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, result.Body)
}

// GetRefundByID GET /refunds/:id
func (h *RefundHandler) GetRefundByID(c echo.Context) error {
	result, err := h.service.GetRefundByID(c.Request().Context(), getByIDRequest(c))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, result.Body)
}
