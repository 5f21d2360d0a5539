// Package notes implements the note store skill: one JSON file per note
// under a per-user directory, addressed by title.
package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"teoskills/internal/apperrors"
	"teoskills/internal/log"
)

const timestampLayout = "2006-01-02T15:04:05.000000"

// Note is one stored note document.
type Note struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Store struct {
	dir    string
	logger *log.Logger
	now    func() time.Time
}

func NewStore(dir string, logger *log.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger.WithComponent(log.ComponentNotes),
		now:    time.Now,
	}
}

func (s *Store) userDir(userID string) (string, error) {
	dir := filepath.Join(s.dir, userID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func (s *Store) notePath(userID, title string) string {
	return filepath.Join(s.dir, userID, title+".json")
}

// List returns every readable note of the user. Unreadable files are
// skipped, not surfaced. Files load concurrently; the result keeps the
// directory listing's order.
func (s *Store) List(ctx context.Context, userID string) ([]Note, error) {
	return s.list(ctx, userID, func(Note) bool { return true })
}

// Get returns one note by title.
func (s *Store) Get(ctx context.Context, userID, title string) (Note, error) {
	note, ok := readNote(s.notePath(userID, title))
	if !ok {
		return Note{}, apperrors.NotFound(fmt.Sprintf("Note '%s' not found", title))
	}
	return note, nil
}

// Create writes a new note; an existing title conflicts.
func (s *Store) Create(ctx context.Context, userID, title, content string) (Note, error) {
	if _, err := s.userDir(userID); err != nil {
		return Note{}, err
	}
	path := s.notePath(userID, title)
	if _, err := os.Stat(path); err == nil {
		return Note{}, apperrors.Conflict(fmt.Sprintf("Note '%s' already exists. Use PUT to update it.", title))
	}

	now := s.now().Format(timestampLayout)
	note := Note{Title: title, Content: content, CreatedAt: now, UpdatedAt: now}
	if err := writeNote(path, note); err != nil {
		return Note{}, err
	}
	s.logger.DebugContext(ctx, "Note created",
		log.FieldOperation, log.OpCreate,
		log.FieldUserID, userID,
		log.FieldRecordID, title)
	return note, nil
}

// Update replaces the content of an existing note and bumps updated_at;
// created_at is preserved.
func (s *Store) Update(ctx context.Context, userID, title, content string) (Note, error) {
	path := s.notePath(userID, title)
	note, ok := readNote(path)
	if !ok {
		return Note{}, apperrors.NotFound(fmt.Sprintf("Note '%s' does not exist. Use POST to create it.", title))
	}

	note.Content = content
	note.UpdatedAt = s.now().Format(timestampLayout)
	if err := writeNote(path, note); err != nil {
		return Note{}, err
	}
	s.logger.DebugContext(ctx, "Note updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldUserID, userID,
		log.FieldRecordID, title)
	return note, nil
}

// Delete removes a note file.
func (s *Store) Delete(ctx context.Context, userID, title string) error {
	path := s.notePath(userID, title)
	if _, err := os.Stat(path); err != nil {
		return apperrors.NotFound(fmt.Sprintf("Note '%s' does not exist.", title))
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "Note deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldUserID, userID,
		log.FieldRecordID, title)
	return nil
}

// Search returns the user's notes whose title or content contains the
// query, case-insensitively.
func (s *Store) Search(ctx context.Context, userID, query string) ([]Note, error) {
	query = strings.ToLower(query)
	return s.list(ctx, userID, func(n Note) bool {
		return strings.Contains(strings.ToLower(n.Title), query) ||
			strings.Contains(strings.ToLower(n.Content), query)
	})
}

// ListByDate returns the user's notes created within [start, end]. Both
// bounds accept full timestamps or bare dates; a bare end date covers
// its whole day.
func (s *Store) ListByDate(ctx context.Context, userID, start, end string) ([]Note, error) {
	startAt, err := parseBound(start, false)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("Invalid date format: %v", err))
	}
	endAt, err := parseBound(end, true)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("Invalid date format: %v", err))
	}

	return s.list(ctx, userID, func(n Note) bool {
		createdAt, err := parseTimestamp(n.CreatedAt)
		if err != nil {
			return false
		}
		return !createdAt.Before(startAt) && !createdAt.After(endAt)
	})
}

func (s *Store) list(ctx context.Context, userID string, match func(Note) bool) ([]Note, error) {
	dir, err := s.userDir(userID)
	if err != nil {
		return nil, err
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	loaded := make([]*Note, len(paths))
	g, _ := errgroup.WithContext(ctx)
	var mu sync.Mutex
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			note, ok := readNote(path)
			if !ok || !match(note) {
				return nil
			}
			mu.Lock()
			loaded[i] = &note
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	notes := []Note{}
	for _, n := range loaded {
		if n != nil {
			notes = append(notes, *n)
		}
	}
	return notes, nil
}

// readNote reports whether the file held a parseable note. Broken files
// behave like absent ones.
func readNote(path string) (Note, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Note{}, false
	}
	var note Note
	if err := json.Unmarshal(data, &note); err != nil {
		return Note{}, false
	}
	return note, true
}

func writeNote(path string, note Note) error {
	data, err := json.MarshalIndent(note, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// parseBound accepts a full timestamp or a bare date; a bare end date is
// stretched to the last instant of its day.
func parseBound(s string, isEnd bool) (time.Time, error) {
	if strings.Contains(s, "T") {
		return parseTimestamp(s)
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if isEnd {
		t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return t, nil
}

func parseTimestamp(s string) (time.Time, error) {
	layouts := []string{
		timestampLayout,
		"2006-01-02T15:04:05",
		time.RFC3339,
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
