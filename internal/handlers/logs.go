package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/service"

	"github.com/gin-gonic/gin"
)

const errCommandsLimitInvalid = "limit must be a non-negative integer"

type commandsResponse struct {
	Count int                      `json:"count"`
	Items []models.CommandLogEntry `json:"items"`
}

// @Summary      List applied commands
// @Description  Reads the command log, oldest first. Optional filter by unit and a cap on the number of most recent entries.
// @Tags         command
// @Produce      json
// @Param        ac_id  query  string  false  "Unit id"  example(F1-AC1)
// @Param        limit  query  int     false  "Last N entries; 0 or absent means all"
// @Success      200  {object}  commandsResponse
// @Failure      400  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Router       /commands [get]
func (h *Handler) listCommands(c *gin.Context) {
	f := service.CommandLogFilter{ACID: strings.TrimSpace(c.Query("ac_id"))}
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil {
			h.badRequest(c, errCommandsLimitInvalid, "commands_bad_limit", err)
			return
		}
		f.Limit = n
	}

	entries, err := h.services.CommandLog.ListCommands(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err, "commands_list_failed", "ac_id", f.ACID, "limit", f.Limit)
		return
	}
	if entries == nil {
		entries = []models.CommandLogEntry{}
	}
	c.JSON(http.StatusOK, commandsResponse{Count: len(entries), Items: entries})
}
