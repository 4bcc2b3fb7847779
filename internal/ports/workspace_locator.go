package ports

// WorkspaceLocator finds a Track-O workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
