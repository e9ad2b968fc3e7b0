package http

import (
	"net/http"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity header names populated by the upstream auth gateway. The gateway
// terminates sessions and forwards the authenticated principal; this service
// never derives identity from request payloads.
const (
	CustomerIDHeader = "X-Customer-Id"
	VendorIDHeader   = "X-Vendor-Id"
)

const (
	customerIDContextKey = "authenticatedCustomerID"
	vendorIDContextKey   = "authenticatedVendorID"
)

// IdentityMiddleware lifts the gateway-supplied principal headers into the
// request context as validated UUIDs. Handlers read identity only from here,
// so a client-supplied body or query field can never widen their scope.
func IdentityMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if raw := ctx.Request().Header.Get(CustomerIDHeader); raw != "" {
			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid customer identity")
			}
			ctx.Set(customerIDContextKey, id)
		}

		if raw := ctx.Request().Header.Get(VendorIDHeader); raw != "" {
			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid vendor identity")
			}
			ctx.Set(vendorIDContextKey, id)
		}

		return next(ctx)
	}
}

func customerIDFromContext(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(customerIDContextKey).(kernel.UUID)
	return id, ok
}

func vendorIDFromContext(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(vendorIDContextKey).(kernel.UUID)
	return id, ok
}
