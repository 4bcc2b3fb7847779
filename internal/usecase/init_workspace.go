package usecase

import (
	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/ports"
)

// InitWorkspace scaffolds tracko.yaml and the data directory under a root.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force)
}
