package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/partsdepot/internal/api"
	"go.uber.org/zap"
)

func (s *Server) placeOrder(c *gin.Context) {
	var req api.OrderRequest
	if !s.bind(c, &req) {
		return
	}

	order, err := s.deps.Storefront.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.OrderEnvelope{Order: api.FromOrder(order)})
}

func (s *Server) listOrders(c *gin.Context) {
	page, limit, ok := s.pageQuery(c)
	if !ok {
		return
	}

	orders, err := s.deps.Orders.ListOrders(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromOrderPage(orders))
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	order, err := s.deps.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.OrderEnvelope{Order: api.FromOrder(order)})
}

func (s *Server) updateOrder(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	var req api.OrderUpdateRequest
	if !s.bind(c, &req) {
		return
	}

	update, err := req.ToDomain()
	if err != nil {
		s.fail(c, err)
		return
	}

	order, err := s.deps.Orders.UpdateOrder(c.Request.Context(), id, update)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info("order updated",
		zap.String("order", order.Number),
		zap.String("status", string(order.Status)),
		zap.String("by", c.GetString(ctxSubject)))

	c.JSON(http.StatusOK, api.OrderEnvelope{Order: api.FromOrder(order)})
}
