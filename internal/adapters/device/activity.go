package device

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// ActivityFile is the JSONL feed of device activity appended by the agent
const ActivityFile = "activity.jsonl"

// ActivityFeed tails the activity JSONL file, returning lines appended since
// the previous poll
type ActivityFeed struct {
	mu     sync.Mutex
	offset int64
	path   string
}

var _ ports.ActivitySource = (*ActivityFeed)(nil)

// NewActivityFeed creates a feed reading activity.jsonl under homeDir.
// Events already in the file are skipped.
func NewActivityFeed(homeDir string) *ActivityFeed {
	return NewActivityFeedWithPath(filepath.Join(homeDir, ActivityFile))
}

// NewActivityFeedWithPath creates a feed for a specific file
func NewActivityFeedWithPath(path string) *ActivityFeed {
	f := &ActivityFeed{path: path}
	if info, err := os.Stat(path); err == nil {
		f.offset = info.Size()
	}
	return f
}

// Poll implements ports.ActivitySource
func (f *ActivityFeed) Poll(ctx context.Context) ([]domain.ActivityEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.offset = 0
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	// Truncated or replaced by the agent
	if info.Size() < f.offset {
		f.offset = 0
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil, err
	}

	var events []domain.ActivityEvent
	reader := bufio.NewReader(file)
	for {
		if err := ctx.Err(); err != nil {
			return events, err
		}

		line, err := reader.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			// Partial line; pick it up once the agent finishes writing it
			break
		}
		if err != nil {
			return events, err
		}
		f.offset += int64(len(line))

		if len(line) <= 1 {
			continue
		}
		var event domain.ActivityEvent
		if err := json.Unmarshal(line, &event); err != nil {
			logging.Logger.Debug("Skipping malformed activity line", "error", err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

// Append writes events to the feed file. Used by the CLI to inject activity.
func (f *ActivityFeed) Append(events ...domain.ActivityEvent) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
