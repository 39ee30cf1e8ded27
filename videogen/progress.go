package videogen

import (
	"encoding/json"
	"os"
)

// Record is the persisted state of one video job.
type Record struct {
	Status string `json:"status"` // submitted, done, failed
	TaskID string `json:"taskId,omitempty"`
	Size   int64  `json:"size,omitempty"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusSubmitted = "submitted"
	StatusDone      = "done"
	StatusFailed    = "failed"
)

// ProgressStore persists per-slug job state across runs.
type ProgressStore interface {
	Load() (map[string]Record, error)
	Save(progress map[string]Record) error
}

// FileStore keeps progress in a JSON file next to the output videos.
type FileStore struct {
	Path string
}

func (s *FileStore) Load() (map[string]Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Record{}, nil
		}
		return nil, err
	}

	progress := map[string]Record{}
	if err := json.Unmarshal(data, &progress); err != nil {
		// A corrupt progress file means starting over, not crashing.
		return map[string]Record{}, nil
	}
	return progress, nil
}

func (s *FileStore) Save(progress map[string]Record) error {
	data, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}
