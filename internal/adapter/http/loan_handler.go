package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	loanuc "loanbook/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	NominalValue *decimal.Decimal `json:"nominal_value" validate:"required,dec2"`
	InterestRate *decimal.Decimal `json:"interest_rate" validate:"required,dec2"`
	Bank         string           `json:"bank" validate:"required,max=255"`
	Client       string           `json:"client" validate:"required,max=255"`
	User         string           `json:"user" validate:"omitempty,max=64"`
}

type updateLoanReq struct {
	NominalValue *decimal.Decimal `json:"nominal_value" validate:"omitempty,dec2"`
	InterestRate *decimal.Decimal `json:"interest_rate" validate:"omitempty,dec2"`
	Bank         *string          `json:"bank" validate:"omitempty,min=1,max=255"`
	Client       *string          `json:"client" validate:"omitempty,min=1,max=255"`
	User         *string          `json:"user" validate:"omitempty,max=64"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), pr, loanuc.CreateLoanInput{
		NominalValue: *req.NominalValue,
		InterestRate: *req.InterestRate,
		Bank:         req.Bank,
		Client:       req.Client,
		User:         req.User,
	}, clientIP(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	dto, err := h.uc.Get(c.Request().Context(), pr, c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
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

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Update(c.Request().Context(), pr, c.Param("loan_id"), loanuc.UpdateLoanInput{
		NominalValue: req.NominalValue,
		InterestRate: req.InterestRate,
		Bank:         req.Bank,
		Client:       req.Client,
		User:         req.User,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	if err := h.uc.Delete(c.Request().Context(), pr, c.Param("loan_id")); err != nil {
		return writeDomainErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) RestoreLoan(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	dto, err := h.uc.Restore(c.Request().Context(), pr, c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) HardDeleteLoan(c echo.Context) error {
	pr, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	if err := h.uc.HardDelete(c.Request().Context(), pr, c.Param("loan_id")); err != nil {
		return writeDomainErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
