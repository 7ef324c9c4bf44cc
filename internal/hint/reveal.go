package hint

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

// Reveal is a Hinter that discloses the solution value of a randomly chosen
// cell that is still empty or holds a wrong value.
type Reveal struct {
	rng *rand.Rand
}

// NewReveal returns a reveal hinter. A nil rng gets a time-seeded one.
func NewReveal(rng *rand.Rand) *Reveal {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Reveal{rng: rng}
}

func (h *Reveal) Hint(ctx context.Context, current, solution domain.Grid) (domain.Hint, bool, error) {
	var spots []domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if current[r][c] != solution[r][c] {
				spots = append(spots, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	if len(spots) == 0 {
		return domain.Hint{}, false, nil
	}
	pick := spots[h.rng.Intn(len(spots))]
	v := solution[pick.Row][pick.Col]
	return domain.Hint{
		Cell:    pick,
		Value:   v,
		Message: fmt.Sprintf("Place %d at row %d, column %d", v, pick.Row+1, pick.Col+1),
	}, true, nil
}
