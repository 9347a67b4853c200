package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/dharavthjayanth/3D-Model/internal/models"
)

const msgChatUsage = "Unrecognized command. Try: set F3-AC1 to 21 | turn off F1-AC2 | mode F2-AC1 cooling"

var (
	chatSetTemp   = regexp.MustCompile(`(?i)^set\s+([\w-]+)\s+to\s+(\d+(?:\.\d+)?)$`)
	chatSetStatus = regexp.MustCompile(`(?i)^turn\s+(on|off)\s+([\w-]+)$`)
	chatSetMode   = regexp.MustCompile(`(?i)^mode\s+([\w-]+)\s+(cooling|heating|fan)$`)
)

// ParseChatCommand maps the dashboard's chat phrases to a command:
//
//	set <unit> to <number>
//	turn on|off <unit>
//	mode <unit> cooling|heating|fan
//
// The unit id is upper-cased and the original text becomes the log note.
func ParseChatCommand(text string) (models.Command, error) {
	t := strings.TrimSpace(text)

	if m := chatSetTemp.FindStringSubmatch(t); m != nil {
		return models.Command{
			ACID:   strings.ToUpper(m[1]),
			Action: string(models.ActionSetTemp),
			Value:  models.CommandValue{Kind: models.ValueNumber, Num: json.Number(m[2])},
			Note:   text,
		}, nil
	}
	if m := chatSetStatus.FindStringSubmatch(t); m != nil {
		return models.Command{
			ACID:   strings.ToUpper(m[2]),
			Action: string(models.ActionSetStatus),
			Value:  models.StringValue(strings.ToUpper(m[1])),
			Note:   text,
		}, nil
	}
	if m := chatSetMode.FindStringSubmatch(t); m != nil {
		return models.Command{
			ACID:   strings.ToUpper(m[1]),
			Action: string(models.ActionSetMode),
			Value:  models.StringValue(capitalize(m[2])),
			Note:   text,
		}, nil
	}
	return models.Command{}, invalidInput(msgChatUsage)
}
