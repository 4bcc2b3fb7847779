package domain

// UserPrefs is the workspace configuration loaded from tracko.yaml.
type UserPrefs struct {
	// DataFile is the roster file. Relative paths resolve against the workspace root.
	DataFile string
	Debug    bool
}

// DefaultUserPrefs provides sane defaults if tracko.yaml is missing or partial.
func DefaultUserPrefs() UserPrefs {
	return UserPrefs{
		DataFile: "data/tracko.json",
	}
}

// WorkspaceSpec describes a workspace to scaffold.
type WorkspaceSpec struct {
	Root string
}
