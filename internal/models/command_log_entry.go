package models

// CommandStatusApplied marks a command that was written to the state table.
const CommandStatusApplied = "Applied"

// CommandLogColumns is the fixed header of the command log.
var CommandLogColumns = []string{"timestamp", "user", "command", "ac_id", "old_value", "new_value", "status"}

// CommandLogEntry is one row of the append-only command log.
type CommandLogEntry struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Command   string `json:"command"` // human-readable
	ACID      string `json:"ac_id"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
	Status    string `json:"status"` // always Applied
}

// Record returns the entry ordered like CommandLogColumns.
func (e CommandLogEntry) Record() []string {
	return []string{e.Timestamp, e.User, e.Command, e.ACID, e.OldValue, e.NewValue, e.Status}
}

// CommandLogEntryFromRow maps a log row read by header name.
func CommandLogEntryFromRow(r Row) CommandLogEntry {
	return CommandLogEntry{
		Timestamp: r.Get("timestamp"),
		User:      r.Get("user"),
		Command:   r.Get("command"),
		ACID:      r.Get("ac_id"),
		OldValue:  r.Get("old_value"),
		NewValue:  r.Get("new_value"),
		Status:    r.Get("status"),
	}
}
