package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

const gamesCollection = "games"

// PocketBase stores saved games as records in a PocketBase collection. Each
// record carries the JSON-encoded SavedGame plus a few queryable columns.
type PocketBase struct {
	client *pocketbase.Client
}

// NewPocketBaseFromEnv reads POCKETBASE_URL, POCKETBASE_EMAIL and
// POCKETBASE_PASSWORD (a .env file is honored if present) and authorizes a
// superuser client.
func NewPocketBaseFromEnv() (*PocketBase, error) {
	_ = godotenv.Load()

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		return nil, fmt.Errorf("POCKETBASE_URL not set")
	}
	email := os.Getenv("POCKETBASE_EMAIL")
	password := os.Getenv("POCKETBASE_PASSWORD")

	client := pocketbase.NewClient(url,
		pocketbase.WithAdminEmailPassword(email, password))
	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("pocketbase authorization failed: %w", err)
	}
	return &PocketBase{client: client}, nil
}

// findRecord returns the PocketBase record holding the given game ID, or
// ok=false when none exists.
func (s *PocketBase) findRecord(id string) (map[string]any, bool, error) {
	result, err := s.client.List(gamesCollection, pocketbase.ParamsList{
		Page:    1,
		Size:    1,
		Filters: fmt.Sprintf("gameId = %q", id),
	})
	if err != nil {
		return nil, false, fmt.Errorf("pocketbase lookup failed: %w", err)
	}
	if len(result.Items) == 0 {
		return nil, false, nil
	}
	return result.Items[0], true, nil
}

func (s *PocketBase) Save(ctx context.Context, sg *domain.SavedGame) error {
	if sg == nil || sg.ID == "" {
		return fmt.Errorf("invalid saved game: missing ID")
	}
	payload, err := json.Marshal(sg)
	if err != nil {
		return fmt.Errorf("failed to marshal saved game: %w", err)
	}
	data := map[string]any{
		"gameId": sg.ID,
		"name":   sg.Name,
		"level":  sg.Level,
		"game":   string(payload),
	}
	rec, ok, err := s.findRecord(sg.ID)
	if err != nil {
		return err
	}
	if ok {
		recordID, _ := rec["id"].(string)
		if err := s.client.Update(gamesCollection, recordID, data); err != nil {
			return fmt.Errorf("failed to update saved game: %w", err)
		}
		return nil
	}
	if _, err := s.client.Create(gamesCollection, data); err != nil {
		return fmt.Errorf("failed to create saved game: %w", err)
	}
	return nil
}

func (s *PocketBase) Load(ctx context.Context, id string) (*domain.SavedGame, error) {
	rec, ok, err := s.findRecord(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, os.ErrNotExist
	}
	raw, _ := rec["game"].(string)
	var out domain.SavedGame
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved game %s: %w", id, err)
	}
	if out.Magic != domain.SaveMagic || out.Version != domain.SaveVersion {
		return nil, ErrIncompatibleSave
	}
	return &out, nil
}

func (s *PocketBase) List(ctx context.Context) ([]domain.GameMeta, error) {
	result, err := s.client.List(gamesCollection, pocketbase.ParamsList{
		Page: 1,
		Size: 200,
		Sort: "-created",
	})
	if err != nil {
		return nil, fmt.Errorf("pocketbase list failed: %w", err)
	}
	out := make([]domain.GameMeta, 0, len(result.Items))
	for _, rec := range result.Items {
		raw, _ := rec["game"].(string)
		var sg domain.SavedGame
		if err := json.Unmarshal([]byte(raw), &sg); err != nil || sg.ID == "" {
			continue
		}
		if sg.Magic != domain.SaveMagic || sg.Version != domain.SaveVersion {
			continue
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

func (s *PocketBase) Delete(ctx context.Context, id string) error {
	rec, ok, err := s.findRecord(id)
	if err != nil {
		return err
	}
	if !ok {
		return os.ErrNotExist
	}
	recordID, _ := rec["id"].(string)
	if err := s.client.Delete(gamesCollection, recordID); err != nil {
		return fmt.Errorf("failed to delete saved game: %w", err)
	}
	return nil
}
