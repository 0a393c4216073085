// Package httpapi is the REST surface of the storefront and its back office.
package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"github.com/nikolayk812/partsdepot/internal/service"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type Deps struct {
	Storefront *service.Storefront
	Parts      port.PartRepository
	Orders     port.OrderRepository
	Partners   port.PartnerRepository
	Users      port.UserRepository

	JWTSecret []byte
	// CartTTL is the lifetime of the cart session cookie.
	CartTTL time.Duration
	// Ping reports whether the backing stores are reachable; nil means healthy.
	Ping func(ctx context.Context) error
}

type Server struct {
	deps   Deps
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer(deps Deps, logger *zap.Logger) *Server {
	s := &Server{
		deps:   deps,
		engine: gin.New(),
		logger: logger.Named("http"),
	}

	s.routes()

	return s
}

// Handler returns the router wrapped with tracing.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.engine, "partsdepot",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "HTTP " + r.Method + " " + r.URL.Path
		}))
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/health", s.health)

	public := r.Group("/api")
	{
		public.GET("/parts", s.listParts)
		public.GET("/parts/:id", s.getPart)
		public.POST("/orders", s.placeOrder)
		public.POST("/partners", s.submitPartner)
		public.POST("/contact", s.contact)
	}

	cart := r.Group("/api/cart", cartSession(s.deps.JWTSecret, s.deps.CartTTL))
	{
		cart.GET("", s.getCart)
		cart.DELETE("", s.clearCart)
		cart.POST("/items", s.addCartItem)
		cart.PATCH("/items/:id", s.updateCartItem)
		cart.DELETE("/items/:id", s.removeCartItem)
		cart.POST("/checkout", s.checkout)
	}

	admin := r.Group("/api", RequireRole(s.deps.JWTSecret, domain.RoleAdmin))
	{
		admin.POST("/parts", s.createPart)
		admin.PATCH("/parts/:id", s.updatePart)
		admin.DELETE("/parts/:id", s.deletePart)

		admin.GET("/orders", s.listOrders)
		admin.GET("/orders/:id", s.getOrder)
		admin.PATCH("/orders/:id", s.updateOrder)

		admin.GET("/partners", s.listPartners)
		admin.GET("/partners/:id", s.getPartner)
		admin.PATCH("/partners/:id", s.reviewPartner)
		admin.DELETE("/partners/:id", s.deletePartner)

		admin.GET("/users", s.listUsers)
		admin.GET("/users/:id", s.getUser)
		admin.PATCH("/users/:id", s.updateUser)
	}
}

func (s *Server) health(c *gin.Context) {
	if s.deps.Ping != nil {
		if err := s.deps.Ping(c.Request.Context()); err != nil {
			s.logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abort(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.fail(c, domain.NewValidationError("id", "is not a valid id"))
		return uuid.Nil, false
	}
	return id, true
}

// pageQuery reads the page and limit query parameters of admin listings.
func (s *Server) pageQuery(c *gin.Context) (int, int, bool) {
	ve := &domain.ValidationError{}

	page := 1
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			ve.Add("page", "must be a positive integer")
		}
		page = n
	}

	limit := defaultPageLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageLimit {
			ve.Add("limit", "must be between 1 and 100")
		}
		limit = n
	}

	if err := ve.Err(); err != nil {
		s.fail(c, err)
		return 0, 0, false
	}

	return page, limit, true
}
