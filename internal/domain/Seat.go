package domain

import "time"

type SeatRole string

const (
	SeatRoleRep     SeatRole = "rep"
	SeatRoleManager SeatRole = "manager"
)

type SeatStatus string

const (
	SeatStatusActive   SeatStatus = "active"
	SeatStatusPaused   SeatStatus = "paused"
	SeatStatusInactive SeatStatus = "inactive"
)

// Seat é um assento de vendedor gerenciado pelo dashboard, opcionalmente
// vinculado a um owner do CRM.
type Seat struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           SeatRole   `json:"role"`
	Status         SeatStatus `json:"status"`
	HubSpotOwnerID *string    `json:"hubspotOwnerId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (r SeatRole) Valid() bool {
	return r == SeatRoleRep || r == SeatRoleManager
}

func (s SeatStatus) Valid() bool {
	return s == SeatStatusActive || s == SeatStatusPaused || s == SeatStatusInactive
}
