package handlers

import (
	"net/http"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidBodyPref = "invalid body: "
	errValueRequired   = "value is required"

	unknownAction = "unknown"
)

// Request DTO for POST /command. Value is a string or a number.
type commandRequest struct {
	User   string              `json:"user"`
	ACID   string              `json:"ac_id" binding:"required"`
	Action string              `json:"action" binding:"required"`
	Value  models.CommandValue `json:"value"`
	Note   string              `json:"note"`
}

// CommandRequest is an exported model for Swagger docs of the command payload.
type CommandRequest struct {
	// Acting user, defaults to Admin
	User string `json:"user,omitempty" example:"Admin"`
	// Target unit
	ACID string `json:"ac_id" example:"F1-AC1"`
	// One of set_temp, set_status, set_mode
	Action string `json:"action" example:"set_temp"`
	// Number in [16, 30] for set_temp, ON/OFF for set_status, Cooling/Heating/Fan for set_mode
	Value string `json:"value" example:"22.5"`
	// Optional free-text description stored in the command log
	Note string `json:"note,omitempty" example:"set F1-AC1 to 22.5"`
}

// TextCommandRequest is the payload of POST /command/text.
type TextCommandRequest struct {
	User string `json:"user,omitempty" example:"Admin"`
	Text string `json:"text" binding:"required" example:"turn off F1-AC2"`
}

type commandResponse struct {
	OK bool `json:"ok"`
	models.CommandResult
}

// @Summary      Apply a command
// @Description  Validates the value, updates the unit in the state file and appends to the command log.
// @Tags         command
// @Accept       json
// @Produce      json
// @Param        body  body  CommandRequest  true  "Command payload"
// @Success      200  {object}  map[string]interface{}  "ok, ac_id, action, new_value"
// @Failure      400  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Router       /command [post]
func (h *Handler) applyCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, errInvalidBodyPref+err.Error(), "command_bad_request_body", err)
		return
	}
	if req.Value.Kind == models.ValueUnset {
		h.badRequest(c, errValueRequired, "command_bad_request_body", nil)
		return
	}

	cmd := models.Command{
		User:   req.User,
		ACID:   req.ACID,
		Action: req.Action,
		Value:  req.Value,
		Note:   req.Note,
	}
	res, err := h.services.Commands.Apply(c.Request.Context(), cmd)
	h.metrics.RecordCommand(actionLabel(req.Action), commandResult(err))
	if err != nil {
		h.respondError(c, err, "command_apply_failed", "ac_id", req.ACID, "action", req.Action)
		return
	}
	h.respondApplied(c, res)
}

// @Summary      Apply a chat command
// @Description  Accepts the dashboard phrases "set <id> to <n>", "turn on|off <id>" and "mode <id> cooling|heating|fan".
// @Tags         command
// @Accept       json
// @Produce      json
// @Param        body  body  TextCommandRequest  true  "Chat phrase"
// @Success      200  {object}  map[string]interface{}  "ok, ac_id, action, new_value"
// @Failure      400  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Router       /command/text [post]
func (h *Handler) applyTextCommand(c *gin.Context) {
	var req TextCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, errInvalidBodyPref+err.Error(), "command_text_bad_request_body", err)
		return
	}

	res, err := h.services.Commands.ApplyText(c.Request.Context(), req.User, req.Text)
	action := unknownAction
	if err == nil {
		action = string(res.Action)
	}
	h.metrics.RecordCommand(action, commandResult(err))
	if err != nil {
		h.respondError(c, err, "command_text_apply_failed", "text", req.Text)
		return
	}
	h.respondApplied(c, res)
}

func (h *Handler) respondApplied(c *gin.Context, res models.CommandResult) {
	h.log.Infow("command_applied",
		"ac_id", res.ACID,
		"action", res.Action,
		"old_value", res.OldValue,
		"new_value", res.NewValue,
		"user", res.User,
		"request_id", requestID(c),
	)
	c.JSON(http.StatusOK, commandResponse{OK: true, CommandResult: res})
}

// actionLabel keeps metric label values to the known actions.
func actionLabel(raw string) string {
	a, err := service.ValidateAction(raw)
	if err != nil {
		return unknownAction
	}
	return string(a)
}
