package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String is the one-line version banner printed by `tracko version`.
func String() string {
	return fmt.Sprintf("tracko %s (commit=%s, date=%s)", Version, Commit, Date)
}
