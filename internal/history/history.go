// Package history reads visit records out of Chrome's local History
// database. Chrome keeps the database locked while running, so every read
// works on a private, transient snapshot copy that is removed afterwards.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Visit is a single recorded page load.
type Visit struct {
	URL          string
	Title        string
	Time         time.Time
	WebkitMicros int64
}

// Reader locates and reads the Chrome history database.
type Reader struct {
	// path overrides platform resolution when non-empty.
	path string
	now  func() time.Time
	log  *slog.Logger
}

// NewReader creates a Reader. overridePath may be empty, in which case the
// database location is resolved from the current platform.
func NewReader(overridePath string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		path: overridePath,
		now:  time.Now,
		log:  logger,
	}
}

// ResolvePath returns the Chrome history database path for the current OS.
func (r *Reader) ResolvePath() (string, error) {
	if r.path != "" {
		return r.path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "History"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default", "History"), nil
	case "linux":
		return filepath.Join(home, ".config", "google-chrome", "Default", "History"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}
}

// snapshot copies the live history database to a private temporary file so
// the read never races with Chrome's own writes. The caller must remove the
// returned path when done.
func (r *Reader) snapshot(sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v (try closing Chrome and running again)", ErrHistoryLocked, err)
	}
	defer src.Close()

	tmpPath := filepath.Join(os.TempDir(), "lookback-history-"+uuid.NewString()+".db")
	dst, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v (try closing Chrome and running again)", ErrHistoryLocked, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v (try closing Chrome and running again)", ErrHistoryLocked, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", ErrHistoryLocked, err)
	}

	return tmpPath, nil
}

// visitRow is the scan target for the visits/urls join.
type visitRow struct {
	URL       string         `db:"url"`
	Title     sql.NullString `db:"title"`
	VisitTime int64          `db:"visit_time"`
}

// Read returns all web visits within the last `hours` hours, ordered by
// ascending visit time. Internal chrome:// and chrome-extension:// URLs
// are skipped.
func (r *Reader) Read(ctx context.Context, hours int) ([]Visit, error) {
	historyPath, err := r.ResolvePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(historyPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w at %s (make sure Chrome is installed and has browsing history)", ErrHistoryNotFound, historyPath)
	}

	tmpPath, err := r.snapshot(historyPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			r.log.Debug("snapshot cleanup failed", "path", tmpPath, "error", rmErr)
		}
	}()

	db, err := sqlx.Open("sqlite3", tmpPath+"?mode=ro&immutable=1&_query_only=1")
	if err != nil {
		return nil, fmt.Errorf("open history snapshot: %w", err)
	}
	defer db.Close()

	now := r.now()
	cutoff := toWebkitMicros(now.Add(-time.Duration(hours) * time.Hour))

	query, args, err := sq.Select("urls.url", "urls.title", "visits.visit_time").
		From("visits").
		Join("urls ON visits.url = urls.id").
		Where(sq.GtOrEq{"visits.visit_time": cutoff}).
		OrderBy("visits.visit_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build visits query: %w", err)
	}

	var rows []visitRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}

	visits := make([]Visit, 0, len(rows))
	for _, row := range rows {
		if row.URL == "" || isInternalURL(row.URL) {
			continue
		}
		visits = append(visits, Visit{
			URL:          row.URL,
			Title:        row.Title.String,
			Time:         fromWebkitMicros(row.VisitTime, now),
			WebkitMicros: row.VisitTime,
		})
	}

	r.log.Debug("history read", "hours", hours, "visits", len(visits))
	return visits, nil
}

// isInternalURL reports whether a URL points at browser-internal pages.
func isInternalURL(url string) bool {
	return strings.HasPrefix(url, "chrome://") || strings.HasPrefix(url, "chrome-extension://")
}
