// Package gitrepo reads token documents versioned in a git repository.
//
// Design-token files usually live next to application code. This package
// opens a local clone with go-git and reads a document at any revision
// (branch, tag, or commit hash) without touching the worktree, so several
// requests can read different revisions concurrently.
package gitrepo
