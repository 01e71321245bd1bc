package handlers

import (
	"net/http"
	"strconv"

	"copro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BuildingHandler handles HTTP requests for building operations
type BuildingHandler struct {
	buildingService service.BuildingServiceInterface
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(buildingService service.BuildingServiceInterface) *BuildingHandler {
	return &BuildingHandler{buildingService: buildingService}
}

// CreateBuilding handles POST /buildings
// @Summary Create a building
// @Tags buildings
// @Accept json
// @Produce json
// @Param building body service.CreateBuildingRequest true "Building data"
// @Success 201 {object} service.BuildingResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Syndic not found"
// @Security BearerAuth
// @Router /buildings [post]
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req service.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	building, err := h.buildingService.CreateBuilding(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, building)
}

// GetBuilding handles GET /buildings/:id
// @Summary Get a building
// @Tags buildings
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} service.BuildingResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Building not found"
// @Security BearerAuth
// @Router /buildings/{id} [get]
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	building, err := h.buildingService.GetBuilding(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, building)
}

// ListBuildings handles GET /buildings
// @Summary List buildings
// @Tags buildings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.BuildingListResponse
// @Security BearerAuth
// @Router /buildings [get]
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	buildings, err := h.buildingService.ListBuildings(c, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildings)
}
