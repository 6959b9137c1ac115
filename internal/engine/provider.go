package engine

import "context"

// ChangedFileProvider is the external collaborator spec.md 6 names for
// "changed-files-only" mode: git-diff invocation itself is explicitly out
// of scope (spec.md 1), so the core only defines the interface and calls
// whatever implementation the host wires in.
type ChangedFileProvider interface {
	ChangedFiles(ctx context.Context, repoRoot, ref string) ([]string, error)
}

// StaticChangedFileProvider is a trivial ChangedFileProvider that always
// returns a fixed file list, used by tests and by hosts that already have
// the changed-file list from elsewhere (e.g. piped in from a separate
// git-diff invocation).
type StaticChangedFileProvider struct {
	Files []string
}

func (p StaticChangedFileProvider) ChangedFiles(_ context.Context, _, _ string) ([]string, error) {
	return p.Files, nil
}
