package team

import "time"

// Team is the club whose matches this service tracks. The deployment owns a
// single club team but the model does not assume that.
type Team struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
