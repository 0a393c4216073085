package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/partsdepot/internal/api"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"go.uber.org/zap"
)

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, api.ErrorResponse{Error: msg})
}

// fail maps err to a status code and error body. Unexpected errors are logged
// and answered with a generic 500.
func (s *Server) fail(c *gin.Context, err error) {
	var (
		ve       *domain.ValidationError
		stockErr *domain.StockError
	)

	switch {
	case errors.As(err, &ve):
		c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: "validation failed", Issues: ve.Issues})
	case errors.Is(err, domain.ErrEmptyCart):
		abort(c, http.StatusBadRequest, domain.ErrEmptyCart.Error())
	case errors.As(err, &stockErr):
		abort(c, http.StatusConflict, stockErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		abort(c, http.StatusNotFound, domain.ErrNotFound.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInsufficientStock):
		abort(c, http.StatusConflict, domain.ErrConflict.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		abort(c, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
	case errors.Is(err, domain.ErrForbidden):
		abort(c, http.StatusForbidden, domain.ErrForbidden.Error())
	default:
		s.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		abort(c, http.StatusInternalServerError, "internal error")
	}
}
