package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// File names inside each session directory. These are an external interface:
// indented UTF-8 JSON with non-ASCII characters preserved unescaped.
const (
	activityFile   = "user_activity.json"
	generationFile = "llm_generations.json"
	reportFile     = "report.json"
)

// FileStore writes one directory per session under a logs root. A per-session
// mutex linearizes the read-modify-write append, so concurrent requests for
// the same session cannot lose entries.
type FileStore struct {
	root string
	log  *zap.SugaredLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file store rooted at dir.
func NewFileStore(dir string, log *zap.SugaredLogger) *FileStore {
	return &FileStore{
		root:  dir,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

type activityEntry struct {
	Timestamp    string      `json:"timestamp"`
	ActivityType string      `json:"activity_type"`
	Data         interface{} `json:"data"`
}

type generationEntry struct {
	Timestamp string `json:"timestamp"`
	GenerationRecord
}

type reportDocument struct {
	Timestamp string `json:"timestamp"`
	ReportSnapshot
}

// RecordActivity appends one timestamped entry to the session's activity log.
func (s *FileStore) RecordActivity(sessionID, activityType string, data interface{}) error {
	return s.appendEntry(sessionID, activityFile, activityEntry{
		Timestamp:    time.Now().Format(time.RFC3339Nano),
		ActivityType: activityType,
		Data:         data,
	})
}

// RecordGeneration appends one timestamped entry to the session's generation log.
func (s *FileStore) RecordGeneration(sessionID string, rec GenerationRecord) error {
	return s.appendEntry(sessionID, generationFile, generationEntry{
		Timestamp:        time.Now().Format(time.RFC3339Nano),
		GenerationRecord: rec,
	})
}

// SaveReport overwrites the session's report snapshot. Last write wins.
func (s *FileStore) SaveReport(sessionID string, rep ReportSnapshot) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	dir, err := s.ensureSessionDir(sessionID)
	if err != nil {
		return err
	}
	doc := reportDocument{
		Timestamp:      time.Now().Format(time.RFC3339Nano),
		ReportSnapshot: rep,
	}
	return writeJSONFile(filepath.Join(dir, reportFile), doc)
}

// appendEntry performs the read-modify-write append under the session lock.
func (s *FileStore) appendEntry(sessionID, name string, entry interface{}) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	dir, err := s.ensureSessionDir(sessionID)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, name)

	entries := s.readEntries(path)
	var entryBuf bytes.Buffer
	enc := json.NewEncoder(&entryBuf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}
	entries = append(entries, json.RawMessage(bytes.TrimRight(entryBuf.Bytes(), "\n")))

	return writeJSONFile(path, entries)
}

// readEntries loads the existing entry array. The recovery policy for an
// unreadable or non-JSON file is reset-to-empty: the old content is discarded
// and a warning is logged.
func (s *FileStore) readEntries(path string) []json.RawMessage {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warnw("resetting unreadable log file", "path", path, "error", err)
		}
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warnw("resetting corrupt log file", "path", path, "error", err)
		return nil
	}
	return entries
}

func (s *FileStore) ensureSessionDir(sessionID string) (string, error) {
	if err := ValidateSessionID(sessionID); err != nil {
		return "", err
	}
	dir := filepath.Join(s.root, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session log dir: %w", err)
	}
	return dir, nil
}

func (s *FileStore) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

func writeJSONFile(path string, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal log file: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	return nil
}
