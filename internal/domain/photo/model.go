package photo

import "time"

// MaxUploadBytes caps a single photo upload.
const MaxUploadBytes = 5 << 20

// Photo is an image attached to a match. AssetID identifies the stored
// object in the external asset store so it can be removed together with
// the record.
type Photo struct {
	ID         string
	MatchID    string
	URL        string
	AssetID    string
	UploadedAt time.Time
}
