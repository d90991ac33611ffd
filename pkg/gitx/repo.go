package gitx

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Index stage numbers during a merge
const (
	StageBase   = 1 // common ancestor
	StageOurs   = 2 // HEAD
	StageTheirs = 3 // MERGE_HEAD
)

// Repo answers questions about a git repository through a Runner
type Repo struct {
	runner Runner
}

// NewRepo creates a Repo backed by the given runner
func NewRepo(runner Runner) *Repo {
	return &Repo{runner: runner}
}

// ConflictedFiles lists the paths with unresolved merge conflicts.
// Only "both modified" (UU) and "both added" (AA) entries qualify.
func (r *Repo) ConflictedFiles(ctx context.Context) ([]string, error) {
	out, err := r.runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	files := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "UU ") || strings.HasPrefix(line, "AA ") {
			files = append(files, strings.TrimSpace(line[3:]))
		}
	}

	return files, scanner.Err()
}

// ReadStage returns the blob for path at the given index stage, or nil when
// the stage is unavailable (e.g. no base version for a both-added file).
func (r *Repo) ReadStage(ctx context.Context, stage int, path string) *string {
	out, err := r.runner.Run(ctx, "show", fmt.Sprintf(":%d:%s", stage, path))
	if err != nil {
		return nil
	}
	content := string(out)
	return &content
}

// MergeBase returns the common ancestor of HEAD and MERGE_HEAD, or nil when
// the repository is not in the middle of a merge.
func (r *Repo) MergeBase(ctx context.Context) *string {
	out, err := r.runner.Run(ctx, "merge-base", "HEAD", "MERGE_HEAD")
	if err != nil {
		return nil
	}
	base := strings.TrimSpace(string(out))
	if base == "" {
		return nil
	}
	return &base
}

// CommitsSince returns one-line summaries of the non-merge commits touching
// path on ref since base. History is a best-effort signal, so failures yield
// an empty list.
func (r *Repo) CommitsSince(ctx context.Context, base, ref, path string) []string {
	out, err := r.runner.Run(ctx, "log", "--oneline", "--no-merges", base+".."+ref, "--", path)
	if err != nil {
		return []string{}
	}

	commits := []string{}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			commits = append(commits, line)
		}
	}
	return commits
}

// WorktreePath resolves a repository-relative path against the git working
// directory, so file reads agree with where git ran. Absolute paths and an
// empty directory pass through unchanged.
func WorktreePath(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// CreateBranch creates a branch at the current HEAD without switching to it.
// A name collision surfaces as an error; no alternate name is attempted.
func (r *Repo) CreateBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "branch", name)
	return err
}
