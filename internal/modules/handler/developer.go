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

type DeveloperHandler struct {
	svc service.CatalogService
	log *zap.Logger
}

func NewDeveloperHandler(svc service.CatalogService, log *zap.Logger) *DeveloperHandler {
	return &DeveloperHandler{svc: svc, log: log}
}

// ListDevelopers godoc
//
//	@Summary		List developers
//	@Description	List all developers with their compound count.
//	@Tags			developers
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Developer}
//	@Failure		500	{object}	serializer.Response
//	@Router			/developers [get]
func (h *DeveloperHandler) ListDevelopers(c *gin.Context) {
	developers, err := h.svc.ListDevelopers(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list developers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch developers"))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(developers))
}

// GetDeveloper godoc
//
//	@Summary		Get developer
//	@Description	Fetch a developer with its compounds, each compound carrying its unit count.
//	@Tags			developers
//	@Produce		json
//	@Param			id	path		string	true	"Developer UUID"
//	@Success		200	{object}	serializer.Response{data=model.Developer}
//	@Failure		404	{object}	serializer.Response
//	@Router			/developers/{id} [get]
func (h *DeveloperHandler) GetDeveloper(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Err("Developer not found"))
		return
	}

	developer, err := h.svc.GetDeveloper(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDeveloperNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err.Error()))
			return
		}
		h.log.Error("failed to fetch developer", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch developer"))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(developer))
}
