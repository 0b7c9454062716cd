package presence

import "time"

// ActivityView is the render-ready projection of an activity: the raw entry
// plus its resolved image URLs and display verb.
type ActivityView struct {
	Activity
	TypeLabel     string `json:"type_label"`
	LargeImageURL string `json:"large_image_url,omitempty"`
	SmallImageURL string `json:"small_image_url,omitempty"`
}

func ViewOf(a Activity) ActivityView {
	return ActivityView{
		Activity:      a,
		TypeLabel:     a.Type.Label(),
		LargeImageURL: LargeImageURL(a),
		SmallImageURL: SmallImageURL(a),
	}
}

// Snapshot is the aggregated state the poller exposes: the last good record,
// its displayable sequence with the carousel cursor, the separately surfaced
// custom status line, and the current progress value.
type Snapshot struct {
	Record       *Record        `json:"record,omitempty"`
	Activities   []ActivityView `json:"activities"`
	CustomStatus *ActivityView  `json:"custom_status,omitempty"`
	Index        int            `json:"index"`
	Progress     float64        `json:"progress"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Stale marks a retained record whose refresh failed; Error carries the
	// cause of the most recent failure, if any.
	Stale bool   `json:"stale"`
	Error string `json:"error,omitempty"`
}
