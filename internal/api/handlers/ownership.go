package handlers

import (
	"net/http"

	"copro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OwnershipHandler handles HTTP requests for the ownership ledger
type OwnershipHandler struct {
	ledger service.OwnershipLedgerInterface
}

// NewOwnershipHandler creates a new ownership handler
func NewOwnershipHandler(ledger service.OwnershipLedgerInterface) *OwnershipHandler {
	return &OwnershipHandler{ledger: ledger}
}

// ListCurrentOwners handles GET /owners
// @Summary List current ownerships
// @Tags owners
// @Produce json
// @Param building_id query int false "Only units of this building"
// @Param unit_id query int false "Only this unit"
// @Success 200 {object} service.OwnershipListResponse
// @Security BearerAuth
// @Router /owners [get]
func (h *OwnershipHandler) ListCurrentOwners(c *gin.Context) {
	buildingID, err := optionalQueryID(c, "building_id")
	if err != nil {
		respondError(c, err)
		return
	}
	unitID, err := optionalQueryID(c, "unit_id")
	if err != nil {
		respondError(c, err)
		return
	}

	owners, err := h.ledger.ListCurrentOwners(c, service.OwnershipFilter{BuildingID: buildingID, UnitID: unitID})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.OwnershipListResponse{Owners: owners})
}

// BuildingOwners handles GET /owners/building/:buildingId
// @Summary List the current owners of a building
// @Description Each active owner holding a current share in the building appears once, ordered by name
// @Tags owners
// @Produce json
// @Param buildingId path int true "Building ID"
// @Success 200 {object} service.BuildingOwnersResponse
// @Failure 400 {object} ErrorResponse "Invalid building id"
// @Security BearerAuth
// @Router /owners/building/{buildingId} [get]
func (h *OwnershipHandler) BuildingOwners(c *gin.Context) {
	buildingID, err := pathID(c, "buildingId")
	if err != nil {
		respondError(c, err)
		return
	}

	owners, err := h.ledger.BuildingOwners(c, buildingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// CreateOwnership handles POST /owners/ownership
// @Summary Record an ownership
// @Description Fails with exceeds_capacity when the unit's current shares plus the requested one would pass 100%
// @Tags owners
// @Accept json
// @Produce json
// @Param ownership body service.CreateOwnershipRequest true "Ownership data"
// @Success 201 {object} service.OwnershipResponse
// @Failure 400 {object} ErrorResponse "Invalid input or capacity exceeded"
// @Failure 404 {object} ErrorResponse "Unit or owner not found"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /owners/ownership [post]
func (h *OwnershipHandler) CreateOwnership(c *gin.Context) {
	var req service.CreateOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ownership, err := h.ledger.CreateOwnership(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ownership)
}

// GetOwnership handles GET /owners/ownership/:id
// @Summary Get an ownership
// @Tags owners
// @Produce json
// @Param id path int true "Ownership ID"
// @Success 200 {object} service.OwnershipResponse
// @Failure 404 {object} ErrorResponse "Ownership not found"
// @Security BearerAuth
// @Router /owners/ownership/{id} [get]
func (h *OwnershipHandler) GetOwnership(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	ownership, err := h.ledger.GetOwnership(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ownership)
}

// UpdateOwnership handles PUT /owners/ownership/:id
// @Summary Update an ownership
// @Description Only the fields present in the body are changed; end_date may be null to reopen
// @Tags owners
// @Accept json
// @Produce json
// @Param id path int true "Ownership ID"
// @Param ownership body service.UpdateOwnershipRequest true "Fields to change"
// @Success 200 {object} service.OwnershipResponse
// @Failure 400 {object} ErrorResponse "Invalid input, no fields or capacity exceeded"
// @Failure 404 {object} ErrorResponse "Ownership not found"
// @Security BearerAuth
// @Router /owners/ownership/{id} [put]
func (h *OwnershipHandler) UpdateOwnership(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.UpdateOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ownership, err := h.ledger.UpdateOwnership(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ownership)
}

// CloseOwnership handles POST /owners/ownership/:id/close
// @Summary Close an ownership
// @Description Administratively deactivate an ownership; it stays in history and no longer counts toward capacity
// @Tags owners
// @Produce json
// @Param id path int true "Ownership ID"
// @Success 200 {object} service.OwnershipResponse
// @Failure 404 {object} ErrorResponse "Ownership not found"
// @Security BearerAuth
// @Router /owners/ownership/{id}/close [post]
func (h *OwnershipHandler) CloseOwnership(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	ownership, err := h.ledger.CloseOwnership(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ownership)
}
