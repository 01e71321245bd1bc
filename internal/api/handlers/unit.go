package handlers

import (
	"net/http"

	"copro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UnitHandler handles HTTP requests for unit operations
type UnitHandler struct {
	unitService service.UnitServiceInterface
	ledger      service.OwnershipLedgerInterface
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(unitService service.UnitServiceInterface, ledger service.OwnershipLedgerInterface) *UnitHandler {
	return &UnitHandler{unitService: unitService, ledger: ledger}
}

// CreateUnit handles POST /units
// @Summary Create a unit
// @Tags units
// @Accept json
// @Produce json
// @Param unit body service.CreateUnitRequest true "Unit data"
// @Success 201 {object} service.UnitResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Building not found"
// @Failure 409 {object} ErrorResponse "Unit number already used in the building"
// @Security BearerAuth
// @Router /units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req service.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	unit, err := h.unitService.CreateUnit(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// GetUnit handles GET /units/:id
// @Summary Get a unit with its current owners
// @Tags units
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} service.UnitWithOwnersResponse
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Security BearerAuth
// @Router /units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	unit, err := h.unitService.GetUnit(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// ListUnits handles GET /units
// @Summary List units
// @Tags units
// @Produce json
// @Param building_id query int false "Only units of this building"
// @Success 200 {object} service.UnitListResponse
// @Security BearerAuth
// @Router /units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	buildingID, err := optionalQueryID(c, "building_id")
	if err != nil {
		respondError(c, err)
		return
	}

	units, err := h.unitService.ListUnits(c, buildingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// UpdateUnit handles PUT /units/:id
// @Summary Update a unit
// @Description Only the fields present in the body are changed
// @Tags units
// @Accept json
// @Produce json
// @Param id path int true "Unit ID"
// @Param unit body service.UpdateUnitRequest true "Fields to change"
// @Success 200 {object} service.UnitResponse
// @Failure 400 {object} ErrorResponse "Invalid input or no fields"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 409 {object} ErrorResponse "Unit number already used in the building"
// @Security BearerAuth
// @Router /units/{id} [put]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	unit, err := h.unitService.UpdateUnit(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// CurrentOwners handles GET /units/:id/owners
// @Summary Current owners of a unit
// @Description Active ownerships whose end date is unset or after today, largest share first
// @Tags units
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} service.OwnershipListResponse
// @Security BearerAuth
// @Router /units/{id}/owners [get]
func (h *UnitHandler) CurrentOwners(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	owners, err := h.ledger.CurrentOwners(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.OwnershipListResponse{Owners: owners})
}
