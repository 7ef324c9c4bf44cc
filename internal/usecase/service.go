package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
	"github.com/nourmourtada10/sudoku-go/internal/ports"
)

// Service is the facade the presentation layers talk to.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, level int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, level)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, current, solution domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, current, solution)
}

// SaveGame stamps the record's format tag and ID before persisting.
func (u *Service) SaveGame(ctx context.Context, sg *domain.SavedGame) (string, error) {
	if u.Storage == nil {
		return "", errNotConfigured
	}
	if sg.ID == "" {
		sg.ID = uuid.New().String()
	}
	if sg.CreatedAt == 0 {
		sg.CreatedAt = time.Now().UnixNano()
	}
	sg.Magic = domain.SaveMagic
	sg.Version = domain.SaveVersion
	if err := u.Storage.Save(ctx, sg); err != nil {
		return "", err
	}
	return sg.ID, nil
}

func (u *Service) LoadGame(ctx context.Context, id string) (*domain.SavedGame, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) ListGames(ctx context.Context) ([]domain.GameMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

func (u *Service) DeleteGame(ctx context.Context, id string) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Delete(ctx, id)
}
