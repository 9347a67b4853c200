package handlers

import (
	"net/http"

	"github.com/dharavthjayanth/3D-Model/internal/models"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	OK   bool   `json:"ok"`
	Time string `json:"time" example:"2025-06-01 12:30:45"`
}

type unitsResponse struct {
	Timestamp string       `json:"timestamp" example:"2025-06-01 12:30:45"`
	Items     []models.Row `json:"items" swaggertype:"array,object"`
}

type unitResponse struct {
	Item models.Row `json:"item" swaggertype:"object"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{OK: true, Time: h.nowString()})
}

// @Summary      Current snapshot of all AC units
// @Description  Rows keep the column order of the state file.
// @Tags         ac
// @Produce      json
// @Success      200  {object}  unitsResponse
// @Failure      500  {object}  errorBody
// @Router       /ac [get]
func (h *Handler) listUnits(c *gin.Context) {
	tbl, err := h.services.Monitoring.Snapshot(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "ac_list_failed")
		return
	}
	items := tbl.Rows
	if items == nil {
		items = []models.Row{}
	}
	c.JSON(http.StatusOK, unitsResponse{Timestamp: h.nowString(), Items: items})
}

// @Summary      Current snapshot of one AC unit
// @Tags         ac
// @Produce      json
// @Param        ac_id  path  string  true  "Unit id"  example(F1-AC1)
// @Success      200  {object}  unitResponse
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Router       /ac/{ac_id} [get]
func (h *Handler) getUnit(c *gin.Context) {
	acID := c.Param("ac_id")
	row, err := h.services.Monitoring.Unit(c.Request.Context(), acID)
	if err != nil {
		h.respondError(c, err, "ac_get_failed", "ac_id", acID)
		return
	}
	c.JSON(http.StatusOK, unitResponse{Item: row})
}
