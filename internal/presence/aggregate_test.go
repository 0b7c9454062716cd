package presence

import (
	"testing"

	"github.com/delciak/biolink/internal/testutil"
)

func testRecord() Record {
	return Record{
		User:   User{ID: "256470398961582080", Username: "delciak", Discriminator: "0", Nickname: "Delciak"},
		Status: StatusOnline,
		Activities: []Activity{
			{Name: "Custom Status", Type: TypeCustomStatus, State: "making things", Emoji: &Emoji{Name: "🛠"}},
			{Name: "Visual Studio Code", Type: TypePlaying, Details: "Editing main.go", ApplicationID: "383226320970055681"},
			{Name: "Twitch", Type: TypeWatching},
		},
		Spotify: &Spotify{
			AlbumArtURL: "https://i.scdn.co/image/ab67616d0000b273",
			Album:       "Random Access Memories",
			Artist:      "Daft Punk",
			Song:        "Instant Crush",
			Timestamps:  Timestamps{Start: 1000, End: 321000},
		},
	}
}

func TestDisplayableFiltersCustomStatus(t *testing.T) {
	t.Parallel()

	out := Displayable(testRecord())

	for _, a := range out {
		if a.Type == TypeCustomStatus {
			t.Fatalf("custom status entry leaked into displayable sequence: %+v", a)
		}
	}
}

func TestDisplayableSynthesizesSpotifyLast(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	out := Displayable(rec)

	testutil.Assert(t, 3, len(out), "sequence length")

	last := out[len(out)-1]
	testutil.Assert(t, "Spotify", last.Name, "synthesized name")
	testutil.Assert(t, TypeListening, last.Type, "synthesized type")
	testutil.Assert(t, "Instant Crush", last.Details, "details carry the song")
	testutil.Assert(t, "by Daft Punk", last.State, "state carries the artist")
	testutil.Assert(t, "Random Access Memories", last.Assets.LargeText, "large text carries the album")
	testutil.Assert(t, rec.Spotify.Timestamps.Start, last.Timestamps.Start, "start timestamp copied")
	testutil.Assert(t, rec.Spotify.Timestamps.End, last.Timestamps.End, "end timestamp copied")
}

func TestDisplayableSkipsSynthesisWhenSpotifyActivityExists(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	rec.Activities = append(rec.Activities, Activity{
		Name: "Spotify",
		Type: TypeListening,
		Assets: &Assets{
			LargeImage: "spotify:ab67616d0000b273",
		},
	})

	out := Displayable(rec)

	count := 0
	for _, a := range out {
		if a.Name == "Spotify" {
			count++
		}
	}

	testutil.Assert(t, 1, count, "exactly one Spotify entry")
}

func TestDisplayablePreservesSourceOrder(t *testing.T) {
	t.Parallel()

	out := Displayable(testRecord())

	testutil.Assert(t, "Visual Studio Code", out[0].Name, "first real activity")
	testutil.Assert(t, "Twitch", out[1].Name, "second real activity")
	testutil.Assert(t, "Spotify", out[2].Name, "synthesized entry last")
}

func TestDisplayableIsIdempotent(t *testing.T) {
	t.Parallel()

	rec := testRecord()

	first := Displayable(rec)
	second := Displayable(rec)

	testutil.Assert(t, len(first), len(second), "same length on repeated aggregation")

	for i := range first {
		testutil.Assert(t, first[i].Name, second[i].Name, "same entry order on repeated aggregation")
	}

	// The record itself must be untouched.
	testutil.Assert(t, 3, len(rec.Activities), "record activities unchanged")
	testutil.Assert(t, TypeCustomStatus, rec.Activities[0].Type, "record order unchanged")
}

func TestDisplayableEmptyRecord(t *testing.T) {
	t.Parallel()

	out := Displayable(Record{Status: StatusOffline})

	testutil.Assert(t, 0, len(out), "no activities, no spotify, empty sequence")
}

func TestCustomStatus(t *testing.T) {
	t.Parallel()

	cs, ok := CustomStatus(testRecord())
	testutil.Assert(t, true, ok, "custom status found")
	testutil.Assert(t, "making things", cs.State, "custom status state")

	_, ok = CustomStatus(Record{})
	testutil.Assert(t, false, ok, "no custom status on empty record")
}
