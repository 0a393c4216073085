package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/partsdepot/internal/api"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

func (s *Server) submitPartner(c *gin.Context) {
	var req api.PartnerRequest
	if !s.bind(c, &req) {
		return
	}

	partner, err := s.deps.Storefront.SubmitPartner(c.Request.Context(), req.ToDomain())
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.FromPartner(partner))
}

func (s *Server) listPartners(c *gin.Context) {
	page, limit, ok := s.pageQuery(c)
	if !ok {
		return
	}

	partners, err := s.deps.Partners.ListPartners(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromPartnerPage(partners))
}

func (s *Server) getPartner(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	partner, err := s.deps.Partners.GetPartner(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromPartner(partner))
}

func (s *Server) reviewPartner(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	var req api.PartnerReviewRequest
	if !s.bind(c, &req) {
		return
	}

	partner, err := s.deps.Storefront.ReviewPartner(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromPartner(partner))
}

func (s *Server) deletePartner(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	deleted, err := s.deps.Partners.DeletePartner(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !deleted {
		s.fail(c, domain.ErrNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) listUsers(c *gin.Context) {
	page, limit, ok := s.pageQuery(c)
	if !ok {
		return
	}

	users, err := s.deps.Users.ListUsers(c.Request.Context(), c.Query("role"), page, limit)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromUserPage(users))
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	user, err := s.deps.Users.GetUser(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromUser(user))
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	var req api.UserUpdateRequest
	if !s.bind(c, &req) {
		return
	}

	update, err := req.ToDomain()
	if err != nil {
		s.fail(c, err)
		return
	}

	user, err := s.deps.Users.UpdateUser(c.Request.Context(), id, update)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromUser(user))
}

func (s *Server) contact(c *gin.Context) {
	var req api.ContactRequest
	if !s.bind(c, &req) {
		return
	}

	if err := s.deps.Storefront.Contact(c.Request.Context(), req.ToDomain()); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "received"})
}
