package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"ddl/internal/diag"
	"ddl/internal/project"
	"ddl/internal/source"
	"ddl/internal/trace"
)

// CheckOptions extends Options for multi-file runs.
type CheckOptions struct {
	Options
	Jobs     int                   // <= 0 means GOMAXPROCS
	Cache    *DiskCache            // nil disables caching
	Exclude  func(rel string) bool // rel is slash-separated, relative to the root
	Observer Observer
}

// CheckResult is the outcome for one file.
type CheckResult struct {
	Path       string // relative to the checked directory
	FileID     source.FileID
	Level      Level
	Items      int
	Structural bool
	Cached     bool
	Bag        *diag.Bag
	Err        error // load failure; Bag is empty then
}

// Failed reports whether the file has a load error, a structural error
// or an error diagnostic.
func (r *CheckResult) Failed() bool {
	return r.Err != nil || r.Structural || (r.Bag != nil && r.Bag.HasErrors())
}

// ListSources returns the sorted relative paths of every .ddl/.cddl file
// under dir. Hidden directories are skipped.
func ListSources(dir string, exclude func(rel string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if path != dir && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSource(path) || (exclude != nil && exclude(rel)) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every source file under dir in parallel. Results come
// back in path order whatever order the workers finish in.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	files, err := ListSources(dir, opts.Exclude)
	if err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", dir, err)
	}
	fileSet := source.NewFileSetWithBase(dir)
	results, err := CheckFiles(ctx, fileSet, dir, files, opts)
	return fileSet, results, err
}

// CheckFiles checks rel paths under root into fileSet.
func CheckFiles(ctx context.Context, fileSet *source.FileSet, root string, files []string, opts CheckOptions) ([]CheckResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	ctx, sp := trace.Start(ctx, trace.ScopePhase, "check")
	done := opts.Timer.Track("check")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	for _, f := range files {
		opts.Observer.emit(f, StageQueued, StatusQueued)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]CheckResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkOne(gctx, fileSet, root, rel, opts)
			return nil
		})
	}
	err := g.Wait()

	failed := 0
	for i := range results {
		if results[i].Failed() {
			failed++
		}
	}
	note := fmt.Sprintf("%d files, %d failed", len(files), failed)
	done(note)
	sp.WithExtra("files", strconv.Itoa(len(files))).End(note)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func checkOne(ctx context.Context, fileSet *source.FileSet, root, rel string, opts CheckOptions) CheckResult {
	ctx, sp := trace.Start(ctx, trace.ScopeFile, rel)
	defer sp.End("")

	res := CheckResult{Path: rel, Bag: diag.NewBag(opts.MaxDiagnostics)}
	opts.Observer.emit(rel, StageLoad, StatusWorking)
	id, err := fileSet.Load(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		res.Err = fmt.Errorf("load %s: %w", rel, err)
		opts.Observer.emit(rel, StageLoad, StatusError)
		return res
	}
	res.FileID = id
	file := fileSet.Get(id)
	res.Level = opts.Level.Resolve(file.Path)

	key := CacheKey(project.Digest(file.Hash), res.Level)
	if opts.Cache != nil {
		var summary CheckSummary
		hit, cacheErr := opts.Cache.Get(key, &summary)
		switch {
		case cacheErr != nil:
			diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.IOCacheError, source.Span{File: id}, "cache read failed").
				WithNote(source.Span{File: id}, cacheErr.Error()).
				Emit()
		case hit:
			summary.replay(id, res.Bag)
			res.Items = summary.Items
			res.Structural = summary.Structural
			res.Cached = true
			sp.Point(trace.ScopeFile, "cache hit", rel)
			opts.Observer.emit(rel, StageParse, StatusCached)
			return res
		}
	}

	perFile := opts.Options
	perFile.Level = res.Level
	perFile.Timer = nil
	opts.Observer.emit(rel, StageParse, StatusWorking)
	parsed, err := ParseFile(ctx, fileSet, id, perFile)
	if err != nil {
		res.Err = err
		opts.Observer.emit(rel, StageParse, StatusError)
		return res
	}
	res.Items = parsed.Items()
	res.Structural = parsed.Structural != nil
	res.Bag.Merge(parsed.Bag)

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, summarize(parsed)); err != nil {
			diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.IOCacheError, source.Span{File: id}, "cache write failed").
				WithNote(source.Span{File: id}, err.Error()).
				Emit()
		}
	}
	if res.Failed() {
		opts.Observer.emit(rel, StageParse, StatusError)
	} else {
		opts.Observer.emit(rel, StageParse, StatusDone)
	}
	return res
}
