package service

import (
	"errors"
	"testing"

	"github.com/dharavthjayanth/3D-Model/internal/models"
)

func TestParseChatCommand(t *testing.T) {
	cases := []struct {
		text   string
		acID   string
		action models.Action
		value  string
	}{
		{"set F3-AC1 to 21", "F3-AC1", models.ActionSetTemp, "21"},
		{"  SET f1-ac2 TO 22.5 ", "F1-AC2", models.ActionSetTemp, "22.5"},
		{"turn off F1-AC2", "F1-AC2", models.ActionSetStatus, "OFF"},
		{"Turn On f2-ac1", "F2-AC1", models.ActionSetStatus, "ON"},
		{"mode F2-AC1 cooling", "F2-AC1", models.ActionSetMode, "Cooling"},
		{"MODE f2-ac1 HEATING", "F2-AC1", models.ActionSetMode, "Heating"},
	}
	for _, tc := range cases {
		cmd, err := ParseChatCommand(tc.text)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.text, err)
		}
		if cmd.ACID != tc.acID || cmd.Action != string(tc.action) || cmd.Value.Text() != tc.value {
			t.Fatalf("%q: got %+v", tc.text, cmd)
		}
		if cmd.Note != tc.text {
			t.Fatalf("%q: note = %q", tc.text, cmd.Note)
		}
	}
}

func TestParseChatCommand_Unrecognized(t *testing.T) {
	for _, text := range []string{"", "hello", "set F1-AC1 to warm", "mode F1-AC1 dry", "turn F1-AC1 off"} {
		if _, err := ParseChatCommand(text); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput, got %v", text, err)
		}
	}
}
