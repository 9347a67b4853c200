package service

// DefaultUser is recorded in the command log when a request names no user.
const DefaultUser = "Admin"

// Options tunes service behaviour from configuration.
type Options struct {
	DefaultUser string
}

// CommandLogFilter narrows a command log listing.
type CommandLogFilter struct {
	ACID  string // "" means every unit
	Limit int    // last N entries; 0 means all
}
