package http

import (
	"errors"
	"net"
	stdhttp "net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"loanbook/internal/domain/authz"
	loandomain "loanbook/internal/domain/loan"
	paymentdomain "loanbook/internal/domain/payment"
)

// ---- helpers ----

// principalFrom pulls the authenticated principal off the request context.
// The auth middleware guarantees it on every guarded route.
func principalFrom(c echo.Context) (authz.Principal, bool) {
	return authz.PrincipalFrom(c.Request().Context())
}

// clientIP is the loan's system-captured origin: first X-Forwarded-For
// entry when present, else the direct peer address.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get(echo.HeaderXForwardedFor); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}
	return host
}

// writeDomainErr maps the domain error taxonomy onto HTTP statuses.
func writeDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loandomain.ErrNotFound), errors.Is(err, paymentdomain.ErrNotFound):
		return c.JSON(stdhttp.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, authz.ErrForbidden):
		return c.JSON(stdhttp.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, paymentdomain.ErrInvalidAmount):
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(stdhttp.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
