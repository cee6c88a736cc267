package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/serializer"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/service"
)

type CompoundHandler struct {
	svc service.CatalogService
	log *zap.Logger
}

func NewCompoundHandler(svc service.CatalogService, log *zap.Logger) *CompoundHandler {
	return &CompoundHandler{svc: svc, log: log}
}

// ListCompounds godoc
//
//	@Summary		List compounds
//	@Description	List all compounds with their developer and unit count.
//	@Tags			compounds
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Compound}
//	@Failure		500	{object}	serializer.Response
//	@Router			/compounds [get]
func (h *CompoundHandler) ListCompounds(c *gin.Context) {
	compounds, err := h.svc.ListCompounds(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list compounds", zap.Error(err))
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch compounds"))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(compounds))
}

// GetCompound godoc
//
//	@Summary		Get compound
//	@Description	Fetch a compound with its developer and units, each unit carrying its payment plan.
//	@Tags			compounds
//	@Produce		json
//	@Param			id	path		string	true	"Compound UUID"
//	@Success		200	{object}	serializer.Response{data=model.Compound}
//	@Failure		404	{object}	serializer.Response
//	@Router			/compounds/{id} [get]
func (h *CompoundHandler) GetCompound(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Err("Compound not found"))
		return
	}

	compound, err := h.svc.GetCompound(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCompoundNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err.Error()))
			return
		}
		h.log.Error("failed to fetch compound", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch compound"))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(compound))
}

// GetCompoundBySlug godoc
//
//	@Summary		Get compound by slug
//	@Description	Fetch a compound by its URL slug with its developer and units.
//	@Tags			compounds
//	@Produce		json
//	@Param			slug	path		string	true	"Compound slug"
//	@Success		200		{object}	serializer.Response{data=model.Compound}
//	@Failure		404		{object}	serializer.Response
//	@Router			/compounds/slug/{slug} [get]
func (h *CompoundHandler) GetCompoundBySlug(c *gin.Context) {
	slug := c.Param("slug")

	compound, err := h.svc.GetCompoundBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrCompoundNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err.Error()))
			return
		}
		h.log.Error("failed to fetch compound by slug", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch compound"))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(compound))
}
