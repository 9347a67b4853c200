package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// Action is one of the supported command kinds.
type Action string

const (
	ActionSetTemp   Action = "set_temp"
	ActionSetStatus Action = "set_status"
	ActionSetMode   Action = "set_mode"
)

// Column returns the state table column an action writes to.
func (a Action) Column() string {
	switch a {
	case ActionSetTemp:
		return "set_temp"
	case ActionSetStatus:
		return "status"
	case ActionSetMode:
		return "mode"
	default:
		return ""
	}
}

// Status is the power state of a unit.
type Status string

const (
	StatusOn  Status = "ON"
	StatusOff Status = "OFF"
)

// Mode is the operating mode of a unit.
type Mode string

const (
	ModeCooling Mode = "Cooling"
	ModeHeating Mode = "Heating"
	ModeFan     Mode = "Fan"
)

// Temperature is a set-point in tenths of a degree Celsius.
type Temperature int64

// Float64 returns the temperature in degrees.
func (t Temperature) Float64() float64 { return float64(t) / 10 }

// String always renders one decimal place, e.g. "22.0".
func (t Temperature) String() string {
	return strconv.FormatFloat(t.Float64(), 'f', 1, 64)
}

// MarshalJSON renders the temperature as a JSON number with one decimal place.
func (t Temperature) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

// ValueKind tags the variant held by a CommandValue.
type ValueKind int

const (
	ValueUnset ValueKind = iota
	ValueString
	ValueNumber
)

var errValueType = errors.New("value must be a string or a number")

// CommandValue is the raw "value" of a command request: either a JSON string
// or a JSON number. Numbers keep their literal text.
type CommandValue struct {
	Kind ValueKind
	Str  string
	Num  json.Number
}

// StringValue wraps a string value.
func StringValue(s string) CommandValue { return CommandValue{Kind: ValueString, Str: s} }

// NumberValue wraps a number value.
func NumberValue(f float64) CommandValue {
	return CommandValue{Kind: ValueNumber, Num: json.Number(strconv.FormatFloat(f, 'f', -1, 64))}
}

// Text returns the value as text: the string itself or the number literal.
func (v CommandValue) Text() string {
	if v.Kind == ValueNumber {
		return v.Num.String()
	}
	return v.Str
}

// UnmarshalJSON accepts a string or a number and rejects every other JSON type.
func (v *CommandValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errValueType
	}
	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = CommandValue{Kind: ValueString, Str: s}
		return nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = CommandValue{Kind: ValueNumber, Num: n}
		return nil
	default:
		return errValueType
	}
}

// MarshalJSON writes the value back in its original variant.
func (v CommandValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return []byte(v.Num.String()), nil
	case ValueString:
		return json.Marshal(v.Str)
	default:
		return []byte("null"), nil
	}
}

// Command is a control request for a single unit.
type Command struct {
	User   string
	ACID   string
	Action string
	Value  CommandValue
	Note   string
}

// Setting is a validated command value in canonical form. Only the field
// matching Action is meaningful.
type Setting struct {
	Action      Action
	Temperature Temperature
	Status      Status
	Mode        Mode
}

// Text is the canonical text stored in the state table and the command log.
func (s Setting) Text() string {
	switch s.Action {
	case ActionSetTemp:
		return s.Temperature.String()
	case ActionSetStatus:
		return string(s.Status)
	case ActionSetMode:
		return string(s.Mode)
	default:
		return ""
	}
}

// Value is the canonical value as returned to API clients: a number for
// temperatures and a string otherwise.
func (s Setting) Value() any {
	if s.Action == ActionSetTemp {
		return s.Temperature
	}
	return s.Text()
}

// CommandResult acknowledges an applied command.
type CommandResult struct {
	ACID     string `json:"ac_id"`
	Action   Action `json:"action"`
	NewValue any    `json:"new_value"`
	OldValue string `json:"-"`
	User     string `json:"-"` // resolved acting user
}
