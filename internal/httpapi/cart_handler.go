package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/partsdepot/internal/api"
)

func (s *Server) getCart(c *gin.Context) {
	cart, err := s.deps.Storefront.Cart(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromCart(cart))
}

func (s *Server) addCartItem(c *gin.Context) {
	var req api.AddToCartRequest
	if !s.bind(c, &req) {
		return
	}

	cart, result, err := s.deps.Storefront.AddToCart(c.Request.Context(), sessionID(c), req.PartID)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := api.FromCart(cart)
	resp.Clamped = result.Clamped

	c.JSON(http.StatusOK, resp)
}

func (s *Server) updateCartItem(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	var req api.UpdateCartItemRequest
	if !s.bind(c, &req) {
		return
	}

	cart, err := s.deps.Storefront.UpdateCartItem(c.Request.Context(), sessionID(c), id, req.Quantity)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromCart(cart))
}

func (s *Server) removeCartItem(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	cart, err := s.deps.Storefront.RemoveCartItem(c.Request.Context(), sessionID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromCart(cart))
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.deps.Storefront.ClearCart(c.Request.Context(), sessionID(c)); err != nil {
		s.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) checkout(c *gin.Context) {
	var req api.CheckoutRequest
	if !s.bind(c, &req) {
		return
	}

	order, err := s.deps.Storefront.Checkout(c.Request.Context(), sessionID(c), req)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.OrderEnvelope{Order: api.FromOrder(order)})
}
