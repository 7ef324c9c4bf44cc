package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

// ErrIncompatibleSave reports a record whose format tag does not match what
// this loader understands.
var ErrIncompatibleSave = errors.New("incompatible save file")

// FS persists saved games as JSON files, one per game, under a directory.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, sg *domain.SavedGame) error {
	if sg == nil || sg.ID == "" {
		return errors.New("invalid saved game: missing ID")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.pathFor(sg.ID))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sg)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SavedGame, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, err
	}
	var out domain.SavedGame
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Magic != domain.SaveMagic || out.Version != domain.SaveVersion {
		return nil, ErrIncompatibleSave
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.GameMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.GameMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var sg domain.SavedGame
		if err := json.Unmarshal(data, &sg); err != nil || sg.ID == "" {
			continue
		}
		if sg.Magic != domain.SaveMagic || sg.Version != domain.SaveVersion {
			continue // skip foreign or stale records
		}
		out = append(out, domain.GameMeta{
			ID:        sg.ID,
			Name:      sg.Name,
			Level:     sg.Level,
			CreatedAt: sg.CreatedAt,
		})
	}
	return out, nil
}

func (s *FS) Delete(ctx context.Context, id string) error {
	return os.Remove(s.pathFor(id))
}
