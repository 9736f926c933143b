package universe

import (
	"time"

	"github.com/google/uuid"
)

// Universe is a self-contained world with its own membership roster. The
// owner is the user who created it; ownership drives the own-possession
// checks on update and delete.
type Universe struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Member is the API representation of a universe membership.
type Member struct {
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
