package presence

// Status is the coarse online state reported by the presence upstream.
type Status string

const (
	StatusOnline  Status = "online"
	StatusIdle    Status = "idle"
	StatusDND     Status = "dnd"
	StatusOffline Status = "offline"
)

// ParseStatus maps an upstream status string onto the fixed enumeration,
// treating anything unrecognized as offline.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusOnline, StatusIdle, StatusDND:
		return Status(s)
	default:
		return StatusOffline
	}
}

type ActivityType int

const (
	TypePlaying ActivityType = iota
	TypeStreaming
	TypeListening
	TypeWatching
	TypeCustomStatus
	TypeCompeting
)

// Label returns the display verb for a type code. Codes outside the
// recognized range read as a generic "Using".
func (t ActivityType) Label() string {
	switch t {
	case TypePlaying:
		return "Playing"
	case TypeStreaming:
		return "Streaming"
	case TypeListening:
		return "Listening"
	case TypeWatching:
		return "Watching"
	case TypeCustomStatus:
		return "Custom Status"
	case TypeCompeting:
		return "Competing"
	default:
		return "Using"
	}
}

// Timestamps carries unix-millisecond start/end marks. Either side may be
// zero, meaning absent.
type Timestamps struct {
	Start int64 `json:"start,omitempty"`
	End   int64 `json:"end,omitempty"`
}

type Assets struct {
	LargeImage string `json:"large_image,omitempty"`
	LargeText  string `json:"large_text,omitempty"`
	SmallImage string `json:"small_image,omitempty"`
	SmallText  string `json:"small_text,omitempty"`
}

type Emoji struct {
	Name     string `json:"name"`
	ID       string `json:"id,omitempty"`
	Animated bool   `json:"animated,omitempty"`
}

type Activity struct {
	Name          string       `json:"name"`
	Type          ActivityType `json:"type"`
	State         string       `json:"state,omitempty"`
	Details       string       `json:"details,omitempty"`
	ApplicationID string       `json:"application_id,omitempty"`
	Timestamps    *Timestamps  `json:"timestamps,omitempty"`
	Assets        *Assets      `json:"assets,omitempty"`
	Emoji         *Emoji       `json:"emoji,omitempty"`
	Buttons       []string     `json:"buttons,omitempty"`
}

// Spotify is the dedicated now-playing block the upstream reports alongside
// the activity list while a Spotify session is active.
type Spotify struct {
	AlbumArtURL string     `json:"album_art_url"`
	Album       string     `json:"album"`
	Artist      string     `json:"artist"`
	Song        string     `json:"song"`
	Timestamps  Timestamps `json:"timestamps"`
}

type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Nickname      string `json:"nickname"`
	Avatar        string `json:"avatar,omitempty"`
}

// Record is one normalized presence snapshot. Records are immutable; every
// successful poll constructs a fresh one.
type Record struct {
	User       User       `json:"user"`
	Status     Status     `json:"status"`
	Activities []Activity `json:"activities"`
	Spotify    *Spotify   `json:"spotify,omitempty"`

	ActiveOnDesktop    bool `json:"active_on_desktop"`
	ActiveOnMobile     bool `json:"active_on_mobile"`
	ActiveOnWeb        bool `json:"active_on_web"`
	ListeningToSpotify bool `json:"listening_to_spotify"`
}
