// Package analyze composes the git repository, the marker parser, the
// dependency scanner and the classifier into the per-command pipelines.
// Each invocation is a pure function of the working tree and the index
// stages; nothing is persisted between runs.
package analyze

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/mergescout/pkg/classify"
	"github.com/sdejongh/mergescout/pkg/deps"
	"github.com/sdejongh/mergescout/pkg/gitx"
	"github.com/sdejongh/mergescout/pkg/logging"
	"github.com/sdejongh/mergescout/pkg/markers"
	"github.com/sdejongh/mergescout/pkg/models"
)

// Analyzer runs conflict analysis pipelines against one repository
type Analyzer struct {
	repo    *gitx.Repo
	workDir string
	logger  logging.Logger
}

// New creates an Analyzer. workDir is the git working directory; relative
// paths, including the repo-relative ones git itself reports, are read from
// there. Every invocation gets an operation ID so log lines from one CLI run
// can be correlated.
func New(repo *gitx.Repo, workDir string, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Analyzer{
		repo:    repo,
		workDir: workDir,
		logger:  logger.WithFields(logging.Fields{"op_id": uuid.New().String()}),
	}
}

// ListConflicts returns the paths of all files with unresolved conflicts
func (a *Analyzer) ListConflicts(ctx context.Context) ([]string, error) {
	files, err := a.repo.ConflictedFiles(ctx)
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "listed conflicted files", logging.Fields{"count": len(files)})
	return files, nil
}

// Extract gathers the three stage blobs and the parsed conflict blocks for
// path. Stage blobs are nil when unavailable; an unreadable working-tree
// file degrades to an empty marker list. With context enabled the commit
// history summary and the classifier verdict are attached.
func (a *Analyzer) Extract(ctx context.Context, path string, withContext bool) (*models.ExtractReport, error) {
	report := &models.ExtractReport{
		Filepath: path,
		Base:     a.repo.ReadStage(ctx, gitx.StageBase, path),
		Ours:     a.repo.ReadStage(ctx, gitx.StageOurs, path),
		Theirs:   a.repo.ReadStage(ctx, gitx.StageTheirs, path),
		Markers:  []models.ConflictBlock{},
	}

	content, err := os.ReadFile(gitx.WorktreePath(a.workDir, path))
	if err != nil {
		a.logger.Warn(ctx, "could not parse markers", logging.Fields{
			"filepath": path,
			"reason":   err.Error(),
		})
	} else {
		report.Markers = markers.Parse(string(content))
	}

	a.logger.Info(ctx, "extracted three-way diff", logging.Fields{
		"filepath": path,
		"blocks":   len(report.Markers),
	})

	if withContext {
		history, err := a.Context(ctx, path)
		if err != nil {
			return nil, err
		}
		report.Context = history

		verdict := classify.Classify(report.Markers)
		report.Category = &verdict
	}

	return report, nil
}

// Context summarizes the commit history around a conflicted file: the merge
// base, the one-line commits unique to each side, and the dependency scan of
// the current working-tree text. All parts are best-effort.
func (a *Analyzer) Context(ctx context.Context, path string) (*models.ContextReport, error) {
	report := &models.ContextReport{
		Filepath:      path,
		MergeBase:     a.repo.MergeBase(ctx),
		OursCommits:   []string{},
		TheirsCommits: []string{},
		Dependencies:  deps.ScanFile(gitx.WorktreePath(a.workDir, path)),
	}

	if report.MergeBase != nil {
		report.OursCommits = a.repo.CommitsSince(ctx, *report.MergeBase, "HEAD", path)
		report.TheirsCommits = a.repo.CommitsSince(ctx, *report.MergeBase, "MERGE_HEAD", path)
	}

	return report, nil
}

// Categorize classifies the conflicts in path. An unreadable file or a file
// without parseable markers yields the UNKNOWN verdict rather than an error.
func (a *Analyzer) Categorize(ctx context.Context, path string) models.Verdict {
	content, err := os.ReadFile(gitx.WorktreePath(a.workDir, path))
	if err != nil {
		a.logger.Warn(ctx, "could not read file for categorization", logging.Fields{
			"filepath": path,
			"reason":   err.Error(),
		})
		return classify.UnknownVerdict()
	}

	verdict := classify.Classify(markers.Parse(string(content)))
	a.logger.Info(ctx, "categorized conflict", logging.Fields{
		"filepath":   path,
		"type":       verdict.Type,
		"difficulty": verdict.Difficulty,
	})

	return verdict
}

// Scan categorizes every conflicted file in the repository. The progress
// callback, when non-nil, is invoked after each file.
func (a *Analyzer) Scan(ctx context.Context, progress func(done, total int)) (*models.ScanReport, error) {
	files, err := a.repo.ConflictedFiles(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.ScanReport{
		Files:      []models.ScanEntry{},
		TotalFiles: len(files),
	}

	for i, path := range files {
		verdict := a.Categorize(ctx, path)
		report.Files = append(report.Files, models.ScanEntry{
			Filepath: path,
			Verdict:  verdict,
		})

		if verdict.AutoResolvable {
			report.AutoResolvable++
		}
		if verdict.Difficulty == models.DifficultyEscalate {
			report.Escalations++
		}

		if progress != nil {
			progress(i+1, len(files))
		}
	}

	return report, nil
}

// Backup creates a branch snapshot of the current state. When name is empty
// a timestamped name is generated from prefix. A name collision surfaces as
// an error; no alternate name is attempted.
func (a *Analyzer) Backup(ctx context.Context, name, prefix string) (string, error) {
	if name == "" {
		name = fmt.Sprintf("%s-%s", prefix, time.Now().Format("20060102-150405"))
	}

	if err := a.repo.CreateBranch(ctx, name); err != nil {
		return "", fmt.Errorf("failed to create backup branch: %w", err)
	}

	a.logger.Info(ctx, "created backup branch", logging.Fields{"branch": name})
	return name, nil
}
