package handler

import (
	"net/http"

	"shopadmin/internal/dto"
	"shopadmin/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Create godoc
// @Summary      Create an inventory record
// @Description  Creates the single inventory record for a product. Fails with 404 when the product does not exist and 400 when the product already has inventory.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateInventoryRequest true "Inventory to create"
// @Success      200  {object} dto.InventoryResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/v1/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List GET /api/v1/inventory
func (h *InventoryHandler) List(c *gin.Context) {
	var page dto.PageQuery
	if !bindQueryAndValidate(c, &page) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alerts godoc
// @Summary      List low-stock alerts
// @Description  Returns one alert for every inventory record whose quantity is at or below its threshold. Unpaged.
// @Tags         inventory
// @Produce      json
// @Success      200 {array} dto.InventoryAlertResponse
// @Router       /api/v1/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *gin.Context) {
	resp, err := h.svc.Alerts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdjustQuantity godoc
// @Summary      Adjust inventory quantity
// @Description  Overwrites the quantity with the supplied absolute value and appends an audit history entry in the same transaction. change_type is descriptive metadata only.
// @Tags         inventory
// @Produce      json
// @Param        id           path  int    true "Inventory ID"
// @Param        new_quantity query int    true "Absolute new quantity"
// @Param        change_type  query string true "add | remove | adjust"
// @Success      200 {object} dto.InventoryResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/v1/inventory/{id} [put]
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AdjustQuantityRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustQuantity(c.Request.Context(), id, *req.NewQuantity, req.ChangeType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History GET /api/v1/inventory/history/:inventory_id — newest first.
func (h *InventoryHandler) History(c *gin.Context) {
	id, ok := parseIDParam(c, "inventory_id")
	if !ok {
		return
	}
	var page dto.PageQuery
	if !bindQueryAndValidate(c, &page) {
		return
	}
	resp, err := h.svc.History(c.Request.Context(), id, page.Skip, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
