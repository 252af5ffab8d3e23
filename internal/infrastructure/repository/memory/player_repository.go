package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-team-manager/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	players map[int64]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{
		players: make(map[int64]player.Player, len(players)),
	}
	for _, p := range players {
		if p.ID <= 0 {
			repo.nextID++
			p.ID = repo.nextID
		}
		if p.ID > repo.nextID {
			repo.nextID = p.ID
		}
		repo.players[p.ID] = p
	}

	return repo
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	return p, ok, nil
}

func (r *PlayerRepository) Insert(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.jerseyTakenLocked(p.JerseyNumber, 0) {
		return player.Player{}, player.ErrJerseyNumberTaken
	}

	r.nextID++
	p.ID = r.nextID
	r.players[p.ID] = p

	return p, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[p.ID]; !ok {
		return player.ErrPlayerNotFound
	}
	if r.jerseyTakenLocked(p.JerseyNumber, p.ID) {
		return player.ErrJerseyNumberTaken
	}
	r.players[p.ID] = p

	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; !ok {
		return false, nil
	}
	delete(r.players, id)

	return true, nil
}

func (r *PlayerRepository) ExistsByJerseyNumber(_ context.Context, number int, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.jerseyTakenLocked(number, excludeID), nil
}

func (r *PlayerRepository) jerseyTakenLocked(number int, excludeID int64) bool {
	for id, p := range r.players {
		if id != excludeID && p.JerseyNumber == number {
			return true
		}
	}
	return false
}
