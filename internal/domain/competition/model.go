package competition

import (
	"errors"
	"time"
)

var ErrDuplicateName = errors.New("competition name already exists for season")

// Competition is one phase of a season (regular stage, playoffs, cup run).
// JerseyURL and FinalTablePhotoURL point at externally hosted images; nil
// means not set.
type Competition struct {
	ID                 string
	Name               string
	SeasonID           string
	IsActive           bool
	JerseyURL          *string
	FinalTablePhotoURL *string
	CreatedAt          time.Time
}
