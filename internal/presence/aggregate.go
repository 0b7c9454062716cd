package presence

// spotifyActivityName is the activity name Discord itself reports for a
// native Spotify session; the synthesized entry must not duplicate it.
const spotifyActivityName = "Spotify"

// Displayable produces the carousel-ready activity sequence for a record:
// custom-status entries are filtered out, and when the record carries a
// Spotify block with no matching real activity, a synthesized listening
// entry is appended last. Pure function of the record.
func Displayable(r Record) []Activity {
	out := make([]Activity, 0, len(r.Activities)+1)

	for _, a := range r.Activities {
		if a.Type == TypeCustomStatus {
			continue
		}

		out = append(out, a)
	}

	if r.Spotify != nil && !containsName(out, spotifyActivityName) {
		out = append(out, synthesizeSpotify(*r.Spotify))
	}

	return out
}

// CustomStatus returns the first custom-status entry of a record, surfaced
// separately from the navigable sequence.
func CustomStatus(r Record) (Activity, bool) {
	for _, a := range r.Activities {
		if a.Type == TypeCustomStatus {
			return a, true
		}
	}

	return Activity{}, false
}

func containsName(items []Activity, name string) bool {
	for _, a := range items {
		if a.Name == name {
			return true
		}
	}

	return false
}

func synthesizeSpotify(sp Spotify) Activity {
	ts := sp.Timestamps

	return Activity{
		Name:    spotifyActivityName,
		Type:    TypeListening,
		Details: sp.Song,
		State:   "by " + sp.Artist,
		Assets: &Assets{
			LargeImage: sp.AlbumArtURL,
			LargeText:  sp.Album,
		},
		Timestamps: &Timestamps{
			Start: ts.Start,
			End:   ts.End,
		},
	}
}
