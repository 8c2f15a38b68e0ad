package persistence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/feltkit/holdem/domain"
)

// FileStore persists hands in a semicolon-delimited CSV file, one record
// per hand id. Loading replays the recorded play history against the
// original deck. A mutex serializes all file access, which also serializes
// writes per hand id.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

func NewFileStore(path string, logger *log.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.WithPrefix("csv-store"),
	}
}

// SaveHand writes the hand's record, replacing any previous record with
// the same id.
func (s *FileStore) SaveHand(id domain.HandID, hand *domain.Hand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}

	updated := encodeHand(id, hand)
	replaced := false
	for i, record := range records {
		if record[0] == id.String() {
			records[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, updated)
	}

	if err := s.writeAll(records); err != nil {
		return err
	}
	s.logger.Debug("hand saved", "hand_id", id, "path", s.path, "replaced", replaced)
	return nil
}

// LoadByID reconstructs the hand stored under the id.
func (s *FileStore) LoadByID(id domain.HandID) (*domain.Hand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record[0] != id.String() {
			continue
		}
		_, hand, err := decodeHand(record)
		if err != nil {
			return nil, err
		}
		return hand, nil
	}
	return nil, CouldNotLoadHandError{ID: id}
}

func (s *FileStore) readAll() ([][]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = recordFields
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return records, nil
}

func (s *FileStore) writeAll(records [][]string) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = ';'
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	writer.Flush()
	return writer.Error()
}
