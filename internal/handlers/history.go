package handlers

import (
	"net/http"
	"strconv"

	"github.com/dharavthjayanth/3D-Model/internal/models"

	"github.com/gin-gonic/gin"
)

const errLimitInvalid = "limit must be a non-negative integer"

type historyResponse struct {
	ACID  string       `json:"ac_id" example:"F1-AC1"`
	Items []models.Row `json:"items" swaggertype:"array,object"`
}

// @Summary      Recent temperature history of a unit
// @Description  Returns the last N points in file order (oldest first). With the collector's 5s interval the default of 720 points is about one hour.
// @Tags         history
// @Produce      json
// @Param        ac_id  path   string  true   "Unit id"  example(F1-AC1)
// @Param        limit  query  int     false  "Number of points; 0 means all"  default(720)
// @Success      200  {object}  historyResponse
// @Failure      400  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Router       /history/{ac_id} [get]
func (h *Handler) getHistory(c *gin.Context) {
	acID := c.Param("ac_id")
	limit := h.opts.HistoryLimit
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil {
			h.badRequest(c, errLimitInvalid, "history_bad_limit", err)
			return
		}
		limit = n
	}

	points, err := h.services.History.Recent(c.Request.Context(), acID, limit)
	if err != nil {
		h.respondError(c, err, "history_get_failed", "ac_id", acID, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, historyResponse{ACID: acID, Items: points})
}
