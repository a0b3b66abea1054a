package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	paymentuc "loanbook/internal/usecase/payment"
)

type PaymentHandler struct{ uc *paymentuc.Usecase }

func NewPaymentHandler(uc *paymentuc.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createPaymentReq struct {
	Loan string `json:"loan" validate:"required,uuid4"`
	// pointer so "missing" and "zero" stay distinguishable: a missing amount
	// is a validation error, an explicit zero is an invalid amount
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), pr, paymentuc.CreatePaymentInput{
		Loan:   req.Loan,
		Amount: *req.Amount,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	dto, err := h.uc.Get(c.Request().Context(), pr, c.Param("payment_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	dtos, err := h.uc.List(c.Request().Context(), pr)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	if err := h.uc.Delete(c.Request().Context(), pr, c.Param("payment_id")); err != nil {
		return writeDomainErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
