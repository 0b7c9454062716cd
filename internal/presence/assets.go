package presence

import (
	"strings"

	"github.com/seventv/common/utils"
	"github.com/valyala/fasttemplate"
)

// Discord asset references are opaque strings resolved by scheme-like
// prefix: "spotify:" refs live on the Spotify image CDN, "mp:" refs on the
// Discord media proxy, and bare refs are app-scoped asset names.
const (
	spotifyImageCDN    = "https://i.scdn.co/image/"
	mediaProxyCDN      = "https://media.discordapp.net/"
	animatedAvatarMark = "a_"
)

var (
	appAssetTemplate = fasttemplate.New("https://cdn.discordapp.com/app-assets/{app}/{asset}.png", "{", "}")
	avatarTemplate   = fasttemplate.New("https://cdn.discordapp.com/avatars/{user}/{avatar}.{ext}", "{", "}")
)

// ImageURL resolves an asset reference into an absolute URL. An empty
// reference yields an empty URL; the caller substitutes its placeholder.
func ImageURL(applicationID string, ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "spotify:"):
		return spotifyImageCDN + strings.TrimPrefix(ref, "spotify:")
	case strings.HasPrefix(ref, "mp:"):
		return mediaProxyCDN + strings.TrimPrefix(ref, "mp:")
	case strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, "http://"):
		// Synthesized entries carry the album art URL verbatim.
		return ref
	default:
		return appAssetTemplate.ExecuteString(map[string]interface{}{
			"app":   applicationID,
			"asset": ref,
		})
	}
}

// LargeImageURL resolves an activity's large image asset, if any.
func LargeImageURL(a Activity) string {
	if a.Assets == nil {
		return ""
	}

	return ImageURL(a.ApplicationID, a.Assets.LargeImage)
}

// SmallImageURL resolves an activity's small image asset, if any.
func SmallImageURL(a Activity) string {
	if a.Assets == nil {
		return ""
	}

	return ImageURL(a.ApplicationID, a.Assets.SmallImage)
}

// AvatarURL resolves an avatar hash into an absolute CDN URL, picking the
// animated extension when the hash carries the animated prefix.
func AvatarURL(userID string, ref string) string {
	if ref == "" {
		return ""
	}

	return avatarTemplate.ExecuteString(map[string]interface{}{
		"user":   userID,
		"avatar": ref,
		"ext":    utils.Ternary(strings.HasPrefix(ref, animatedAvatarMark), "gif", "png"),
	})
}
