package externalapis

import (
	"net/http"

	"github.com/delciak/biolink/internal/errors"
	"github.com/delciak/biolink/internal/global"
	"github.com/delciak/biolink/internal/presence"
	"go.uber.org/zap"
)

type lanyard struct{}

var Lanyard = lanyard{}

// UserPresence performs one best-effort fetch of the given user's presence
// and normalizes the payload. The response is never cached; every call hits
// the upstream. It either returns a complete record or an error from the
// fetch taxonomy, never a partial record.
func (lanyard) UserPresence(gctx global.Context, userID string) (presence.Record, error) {
	record := presence.Record{}

	req, err := Lanyard.LanyardAPIRequest(gctx, "GET", "/users/"+userID)
	if err != nil {
		return record, errors.ErrFetchFailed().SetDetail(err.Error())
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		zap.S().Errorw("lanyard request failed",
			"user_id", userID,
			"error", err,
		)

		return record, errors.ErrFetchFailed().SetDetail(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return record, errors.ErrUpstreamUnavailable().
			SetDetail("status %d", resp.StatusCode).
			SetFields(errors.Fields{"status": resp.StatusCode})
	}

	env := envelope{}
	if err = ReadRequestResponse(resp, &env); err != nil {
		zap.S().Errorw("lanyard response parse failed",
			"user_id", userID,
			"error", err,
		)

		return record, errors.ErrFetchFailed().SetDetail(err.Error())
	}

	// The envelope is a tagged variant: fail closed unless it is an
	// explicit success carrying data.
	if !env.Success || env.Data == nil {
		return record, errors.ErrNotTracked()
	}

	return normalize(*env.Data), nil
}

type envelope struct {
	Success bool           `json:"success"`
	Data    *envelopeData  `json:"data"`
	Error   *envelopeError `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelopeData struct {
	DiscordUser struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		GlobalName    string `json:"global_name"`
		Discriminator string `json:"discriminator"`
		Avatar        string `json:"avatar"`
	} `json:"discord_user"`
	DiscordStatus string              `json:"discord_status"`
	Activities    []presence.Activity `json:"activities"`
	Spotify       *presence.Spotify   `json:"spotify"`
	KV            map[string]string   `json:"kv"`

	ActiveOnDiscordDesktop bool `json:"active_on_discord_desktop"`
	ActiveOnDiscordMobile  bool `json:"active_on_discord_mobile"`
	ActiveOnDiscordWeb     bool `json:"active_on_discord_web"`
	ListeningToSpotify     bool `json:"listening_to_spotify"`
}

func normalize(d envelopeData) presence.Record {
	u := d.DiscordUser

	nickname := u.GlobalName
	if nickname == "" {
		nickname = u.Username
	}

	discriminator := u.Discriminator
	if discriminator == "" {
		discriminator = "0"
	}

	return presence.Record{
		User: presence.User{
			ID:            u.ID,
			Username:      u.Username,
			Discriminator: discriminator,
			Nickname:      nickname,
			Avatar:        presence.AvatarURL(u.ID, u.Avatar),
		},
		Status:     presence.ParseStatus(d.DiscordStatus),
		Activities: d.Activities,
		Spotify:    d.Spotify,

		ActiveOnDesktop:    d.ActiveOnDiscordDesktop,
		ActiveOnMobile:     d.ActiveOnDiscordMobile,
		ActiveOnWeb:        d.ActiveOnDiscordWeb,
		ListeningToSpotify: d.ListeningToSpotify,
	}
}
