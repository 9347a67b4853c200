package service

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dharavthjayanth/3D-Model/internal/models"
)

// Inclusive set-point range in °C.
const (
	MinSetTempC = 16.0
	MaxSetTempC = 30.0
)

const (
	msgInvalidAction = "Invalid action. Use: set_temp | set_status | set_mode"
	msgTempNotNumber = "set_temp value must be a number"
	msgTempRange     = "Temperature out of allowed range (16–30)"
	msgStatusValue   = "set_status value must be ON or OFF"
	msgModeValue     = "set_mode value must be Cooling/Heating/Fan"
)

// ValidateCommand checks the action and value of cmd and returns the value in
// canonical form. It never touches storage.
func ValidateCommand(cmd models.Command) (models.Setting, error) {
	action, err := ValidateAction(cmd.Action)
	if err != nil {
		return models.Setting{}, err
	}
	return ValidateValue(action, cmd.Value)
}

// ValidateAction trims and lower-cases raw and checks it is a known action.
func ValidateAction(raw string) (models.Action, error) {
	switch a := models.Action(strings.ToLower(strings.TrimSpace(raw))); a {
	case models.ActionSetTemp, models.ActionSetStatus, models.ActionSetMode:
		return a, nil
	default:
		return "", invalidInput(msgInvalidAction)
	}
}

// ValidateValue normalizes v for action.
func ValidateValue(action models.Action, v models.CommandValue) (models.Setting, error) {
	s := models.Setting{Action: action}
	switch action {
	case models.ActionSetTemp:
		t, err := parseTemperature(v)
		if err != nil {
			return models.Setting{}, err
		}
		s.Temperature = t
	case models.ActionSetStatus:
		st := models.Status(strings.ToUpper(strings.TrimSpace(v.Text())))
		if st != models.StatusOn && st != models.StatusOff {
			return models.Setting{}, invalidInput(msgStatusValue)
		}
		s.Status = st
	case models.ActionSetMode:
		m := models.Mode(capitalize(strings.TrimSpace(v.Text())))
		if m != models.ModeCooling && m != models.ModeHeating && m != models.ModeFan {
			return models.Setting{}, invalidInput(msgModeValue)
		}
		s.Mode = m
	default:
		return models.Setting{}, invalidInput(msgInvalidAction)
	}
	return s, nil
}

// parseTemperature accepts a finite decimal in [MinSetTempC, MaxSetTempC] and
// rounds it to tenths. Rounding goes through FormatFloat so that the exact
// binary value decides, e.g. 22.25 -> 22.2 and 22.37 -> 22.4.
func parseTemperature(v models.CommandValue) (models.Temperature, error) {
	text := strings.TrimSpace(v.Text())
	if text == "" || strings.ContainsAny(text, "xX_") {
		return 0, invalidInput(msgTempNotNumber)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidInput(msgTempNotNumber)
	}
	if f < MinSetTempC || f > MaxSetTempC {
		return 0, invalidInput(msgTempRange)
	}
	rounded := strconv.FormatFloat(f, 'f', 1, 64)
	tenths, err := strconv.ParseInt(strings.Replace(rounded, ".", "", 1), 10, 64)
	if err != nil {
		return 0, invalidInput(msgTempNotNumber)
	}
	return models.Temperature(tenths), nil
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
