package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/partsdepot/internal/api"
	"github.com/nikolayk812/partsdepot/internal/catalog"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

func (s *Server) listParts(c *gin.Context) {
	filters, err := catalog.ParseParams(c.Request.URL.Query())
	if err != nil {
		s.fail(c, err)
		return
	}

	page, err := s.deps.Parts.ListParts(c.Request.Context(), filters)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromPartPage(page))
}

func (s *Server) getPart(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	part, err := s.deps.Parts.GetPart(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromPart(part))
}

func (s *Server) createPart(c *gin.Context) {
	var in api.PartInput
	if !s.bind(c, &in) {
		return
	}

	if in.Price == nil {
		s.fail(c, domain.NewValidationError("price", "is required"))
		return
	}

	part := in.Apply(domain.Part{Condition: domain.ConditionNew})

	created, err := s.deps.Parts.CreatePart(c.Request.Context(), part)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.FromPart(created))
}

func (s *Server) updatePart(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	var in api.PartInput
	if !s.bind(c, &in) {
		return
	}

	ctx := c.Request.Context()

	current, err := s.deps.Parts.GetPart(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}

	updated, err := s.deps.Parts.UpdatePart(ctx, in.Apply(current))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromPart(updated))
}

func (s *Server) deletePart(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	deleted, err := s.deps.Parts.DeletePart(c.Request.Context(), id)
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
