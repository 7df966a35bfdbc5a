package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"dtcheck/internal/compare"
	"dtcheck/internal/library"
	"dtcheck/internal/logging"
	"dtcheck/internal/report"
	"dtcheck/internal/sidecar"
)

// Options configures one scan run.
type Options struct {
	// ConfigDir is the darktable configuration directory holding library.db
	// and data.db.
	ConfigDir string
	// MinRating skips photos rated below it; -1 scans everything including
	// rejected photos.
	MinRating int
	// Fields selects comparison schema fields; empty means all.
	Fields []string
	// SidecarExtension overrides the default ".xmp".
	SidecarExtension string
	// LockPath, when set, is the single-instance lock file.
	LockPath string
	Logger   *slog.Logger
}

// Run executes the consistency pass and returns the collected report. The
// catalog connection is closed on every exit path.
func Run(ctx context.Context, opts Options) (*report.Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if opts.LockPath != "" {
		lock := flock.New(opts.LockPath)
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire scan lock: %w", err)
		}
		if !ok {
			return nil, errors.New("another dtcheck scan is already running")
		}
		defer func() { _ = lock.Unlock() }()
	}

	comparator, err := compare.New(opts.Fields...)
	if err != nil {
		return nil, err
	}

	lib, err := library.Open(ctx, opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	defer lib.Close()

	rep := report.New(lib.ConfigDir())
	logger = logger.With("run_id", rep.RunID)
	logger.Info("scan started", "config_dir", lib.ConfigDir(), "min_rating", opts.MinRating)

	photos, err := lib.Photos(ctx)
	if err != nil {
		return nil, err
	}

	locator := sidecar.Locator{Extension: opts.SidecarExtension}
	for _, photo := range photos {
		if photo.Rating < opts.MinRating {
			rep.RecordSkipped()
			continue
		}

		res, err := locator.Resolve(photo.Filepath, photo.Version)
		if err != nil {
			rep.RecordPhoto([]compare.Finding{unreadableFinding(photo, res, err)})
			logger.Warn("sidecar unreadable", "photo_id", photo.ID, "sidecar", res.Path, "error", err)
			continue
		}

		var sc *sidecar.Sidecar
		if res.Found {
			sc, err = sidecar.ReadFile(res.Path)
			if err != nil {
				rep.RecordPhoto([]compare.Finding{unreadableFinding(photo, res, err)})
				logger.Warn("sidecar unreadable", "photo_id", photo.ID, "sidecar", res.Path, "error", err)
				continue
			}
		}

		rep.RecordPhoto(comparator.Compare(photo, res, sc))
	}

	logger.Info("scan finished",
		"photos", rep.Summary.Photos,
		"clean", rep.Summary.Clean,
		"no_sidecar", rep.Summary.NoSidecar,
		"mismatches", rep.Summary.Mismatches,
		"warnings", rep.Summary.Warnings,
	)
	return rep, nil
}

func unreadableFinding(photo *library.Photo, res sidecar.Resolution, err error) compare.Finding {
	return compare.Finding{
		PhotoID:     photo.ID,
		Path:        photo.Filepath,
		Version:     photo.Version,
		SidecarPath: res.Path,
		Kind:        compare.KindSidecarUnreadable,
		Detail:      err.Error(),
	}
}
