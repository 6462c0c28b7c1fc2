package gitrepo

import (
	"errors"
	"fmt"
	"io"
	"time"

	"token-bridge/core/tokens"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	// ErrRevisionNotFound is returned when a ref cannot be resolved.
	ErrRevisionNotFound = errors.New("revision not found")
	// ErrFileNotFound is returned when the path does not exist at the revision.
	ErrFileNotFound = errors.New("file not found at revision")
)

// CommitInfo describes the commit a document was read from.
type CommitInfo struct {
	Hash    string    `json:"hash"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	When    time.Time `json:"when"`
}

// Repository reads files from a local git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the repository at path.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}
	return &Repository{repo: repo}, nil
}

// ReadFile returns the content of path at ref. An empty ref reads HEAD.
func (r *Repository) ReadFile(ref, path string) ([]byte, CommitInfo, error) {
	commitObj, err := r.commit(ref)
	if err != nil {
		return nil, CommitInfo{}, err
	}

	content, err := readFileFromCommit(commitObj, path)
	if err != nil {
		return nil, CommitInfo{}, err
	}
	return content, toCommitInfo(commitObj), nil
}

// ReadDocument reads and parses the token document at path and ref.
func (r *Repository) ReadDocument(ref, path string) (tokens.Document, CommitInfo, error) {
	content, info, err := r.ReadFile(ref, path)
	if err != nil {
		return nil, CommitInfo{}, err
	}

	doc, err := tokens.Parse(content)
	if err != nil {
		return nil, CommitInfo{}, fmt.Errorf("parse %s@%s: %w", path, info.Hash, err)
	}
	return doc, info, nil
}

// History lists the commits reachable from ref that changed path, newest
// first. limit <= 0 means no limit.
func (r *Repository) History(ref, path string, limit int) ([]CommitInfo, error) {
	head, err := r.commit(ref)
	if err != nil {
		return nil, err
	}

	opts := &git.LogOptions{From: head.Hash, Order: git.LogOrderCommitterTime}
	if path != "" {
		p := path
		opts.FileName = &p
	}

	iter, err := r.repo.Log(opts)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	defer iter.Close()

	history := make([]CommitInfo, 0)
	for {
		commitObj, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate history: %w", err)
		}
		history = append(history, toCommitInfo(commitObj))
		if limit > 0 && len(history) >= limit {
			break
		}
	}
	return history, nil
}

func (r *Repository) commit(ref string) (*object.Commit, error) {
	hash, err := resolveRevision(r.repo, ref)
	if err != nil {
		return nil, err
	}
	commitObj, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRevisionNotFound, ref, err)
	}
	return commitObj, nil
}

func resolveRevision(repo *git.Repository, ref string) (plumbing.Hash, error) {
	if ref == "" {
		ref = "HEAD"
	}
	if len(ref) == 40 && plumbing.IsHash(ref) {
		return plumbing.NewHash(ref), nil
	}
	resolved, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %s: %v", ErrRevisionNotFound, ref, err)
	}
	return *resolved, nil
}

func readFileFromCommit(commitObj *object.Commit, path string) ([]byte, error) {
	file, err := commitObj.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("load %s from commit: %w", path, err)
	}
	reader, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("open %s reader: %w", path, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

func toCommitInfo(commitObj *object.Commit) CommitInfo {
	return CommitInfo{
		Hash:    commitObj.Hash.String(),
		Message: commitObj.Message,
		Author:  commitObj.Author.Name,
		When:    commitObj.Author.When,
	}
}
