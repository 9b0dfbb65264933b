package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"online-payments/internal/application/gateway"
)

// 決済APIが読むヘッダーとクエリ
const (
	HeaderMerchantID       = "merchant-id"
	HeaderRequestID        = "request-id"
	QueryRequestIdentifier = "requestIdentifier"
)

// createRequest ヘッダーとボディから作成リクエストを組み立てる
func createRequest(c echo.Context) (*gateway.CreateRequest, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// BodyLimitミドルウェアは上限超過をHTTPErrorとして返す
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return nil, httpErr
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, echo.ErrStatusRequestEntityTooLarge
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	return &gateway.CreateRequest{
		MerchantID: c.Request().Header.Get(HeaderMerchantID),
		RequestID:  c.Request().Header.Get(HeaderRequestID),
		Body:       body,
	}, nil
}

func getRequest(c echo.Context) *gateway.GetRequest {
	return &gateway.GetRequest{
		MerchantID:        c.Request().Header.Get(HeaderMerchantID),
		RequestIdentifier: c.QueryParam(QueryRequestIdentifier),
	}
}

func getByIDRequest(c echo.Context) *gateway.GetByIDRequest {
	return &gateway.GetByIDRequest{
		MerchantID:    c.Request().Header.Get(HeaderMerchantID),
		TransactionID: c.Param("id"),
	}
}

// created 新規作成なら201、再送なら保存済みレスポンスを200で返す
func created(c echo.Context, result *gateway.Result) error {
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	return c.JSONBlob(status, result.Body)
}
