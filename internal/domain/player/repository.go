package player

import "context"

// Repository describes player persistence needs from use cases.
//
// Insert and Update return ErrJerseyNumberTaken when the store rejects a
// duplicate jersey number. Update returns ErrPlayerNotFound when no row with
// the player's id exists.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Insert(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id int64) (bool, error)
	// ExistsByJerseyNumber ignores the player with excludeID; pass 0 to check all players.
	ExistsByJerseyNumber(ctx context.Context, number int, excludeID int64) (bool, error)
}
