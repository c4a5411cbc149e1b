package directory

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table. Appointments reference doctors by id.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Specialty string    `db:"specialty" json:"specialty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Room maps to the rooms table.
type Room struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Number    int       `db:"room_number" json:"room_number"`
	Floor     int       `db:"floor" json:"floor"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
