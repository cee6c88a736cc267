package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/serializer"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/service"
	"github.com/OMAR684257931/nawy-apartments/internal/pkg/filter"
)

type UnitHandler struct {
	svc service.UnitService
	log *zap.Logger
}

func NewUnitHandler(svc service.UnitService, log *zap.Logger) *UnitHandler {
	return &UnitHandler{svc: svc, log: log}
}

// GetUnits godoc
//
//	@Summary		List units
//	@Description	List units with filtering, search and pagination. Results are ordered by creation time descending.
//	@Tags			units
//	@Produce		json
//	@Param			min_price		query	number	false	"Minimum price"
//	@Param			max_price		query	number	false	"Maximum price"
//	@Param			unit_area_min	query	number	false	"Minimum unit area"
//	@Param			unit_area_max	query	number	false	"Maximum unit area"
//	@Param			bedrooms		query	integer	false	"Exact number of bedrooms"
//	@Param			property_types	query	string	false	"Comma-separated property types"
//	@Param			amenities		query	string	false	"Comma-separated amenity tags (matches any)"
//	@Param			compound_id		query	string	false	"Compound UUID"
//	@Param			developer_id	query	string	false	"Developer UUID"
//	@Param			area			query	string	false	"Substring match on compound location"
//	@Param			search			query	string	false	"Free-text search over title, reference, unit number, compound and developer names"
//	@Param			page			query	integer	false	"Page number (default 1)"
//	@Param			limit			query	integer	false	"Page size (default 10)"
//	@Success		200	{object}	serializer.Response{data=[]model.Unit}
//	@Failure		400	{object}	serializer.Response
//	@Router			/units [get]
func (h *UnitHandler) GetUnits(c *gin.Context) {
	spec, err := filter.Compile(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err.Error()))
		return
	}

	out, err := h.svc.List(c.Request.Context(), spec)
	if err != nil {
		h.log.Error("failed to list units", zap.Error(err))
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch units"))
		return
	}

	c.JSON(http.StatusOK, serializer.Paged(out.Items, out.Pagination))
}

// GetUnit godoc
//
//	@Summary		Get unit
//	@Description	Fetch a single unit with its compound, developer and payment plan.
//	@Tags			units
//	@Produce		json
//	@Param			id	path		string	true	"Unit UUID"
//	@Success		200	{object}	serializer.Response{data=model.Unit}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err("Invalid unit ID"))
		return
	}

	unit, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUnitNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err.Error()))
			return
		}
		h.log.Error("failed to fetch unit", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch unit"))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(unit))
}

type CreateUnitReq struct {
	Title           string   `json:"title" binding:"required,max=255"`
	ReferenceNumber string   `json:"reference_number" binding:"required,max=100"`
	UnitNumber      string   `json:"unit_number" binding:"required,max=100"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	Bedrooms        *int     `json:"bedrooms" binding:"required,gte=0"`
	UnitArea        float64  `json:"unit_area" binding:"required,gt=0"`
	PropertyType    string   `json:"property_type" binding:"required,oneof=Apartment Villa Duplex Penthouse Chalet Studio Townhouse"`
	SaleType        string   `json:"sale_type" binding:"required,oneof=DeveloperSale Resale"`
	Amenities       []string `json:"amenities"`
	GalleryImages   []string `json:"gallery_images" binding:"omitempty,dive,url"`
	DeliveryYear    int      `json:"delivery_year" binding:"required,min=2024"`
	CompoundID      string   `json:"compound_id" binding:"required,uuid"`
}

// CreateUnit godoc
//
//	@Summary		Create unit
//	@Description	Create a unit. The reference number must be unique and the compound must exist.
//	@Tags			units
//	@Accept			json
//	@Produce		json
//	@Param			unit	body		CreateUnitReq	true	"Unit payload"
//	@Success		201		{object}	serializer.Response{data=model.Unit}
//	@Failure		400		{object}	serializer.Response
//	@Failure		404		{object}	serializer.Response
//	@Failure		409		{object}	serializer.Response
//	@Router			/units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req CreateUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err.Error()))
		return
	}

	compoundID, err := uuid.Parse(req.CompoundID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err("Invalid compound ID"))
		return
	}

	unit, err := h.svc.Create(c.Request.Context(), service.CreateUnitInput{
		Title:           req.Title,
		ReferenceNumber: req.ReferenceNumber,
		UnitNumber:      req.UnitNumber,
		Price:           req.Price,
		Bedrooms:        *req.Bedrooms,
		UnitArea:        req.UnitArea,
		PropertyType:    model.PropertyType(req.PropertyType),
		SaleType:        model.SaleType(req.SaleType),
		Amenities:       req.Amenities,
		GalleryImages:   req.GalleryImages,
		DeliveryYear:    req.DeliveryYear,
		CompoundID:      compoundID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateReference):
			c.JSON(http.StatusConflict, serializer.Err(err.Error()))
		case errors.Is(err, service.ErrCompoundNotFound):
			c.JSON(http.StatusNotFound, serializer.Err(err.Error()))
		default:
			h.log.Error("failed to create unit", zap.String("reference", req.ReferenceNumber), zap.Error(err))
			c.JSON(http.StatusInternalServerError, serializer.Err("Failed to create unit"))
		}
		return
	}

	c.JSON(http.StatusCreated, serializer.OK(unit))
}
