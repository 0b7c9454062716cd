package views

import (
	"sync"
	"time"

	"github.com/delciak/biolink/internal/errors"
	"github.com/delciak/biolink/internal/instance"
	"github.com/golang-jwt/jwt/v4"
	cache "github.com/patrickmn/go-cache"
	"github.com/seventv/common/utils"
	"go.uber.org/zap"
)

type Options struct {
	// Cooldown is the minimum gap between counted visits from one token or
	// visitor key.
	Cooldown  time.Duration
	JWTSecret string
}

func New(opt Options) instance.Views {
	return &viewsInst{
		cooldown: opt.Cooldown,
		secret:   []byte(opt.JWTSecret),
		ledger:   cache.New(opt.Cooldown, opt.Cooldown*2),
	}
}

type viewsInst struct {
	mx     sync.Mutex
	count  int64
	secret []byte

	cooldown time.Duration

	// ledger remembers visitor keys counted within the cooldown, catching
	// rapid replays from clients that discard their cookie.
	ledger *cache.Cache
}

func (v *viewsInst) Read() int64 {
	v.mx.Lock()
	defer v.mx.Unlock()

	return v.count
}

func (v *viewsInst) Increment(token string, visitor string) (int64, string, bool) {
	v.mx.Lock()
	defer v.mx.Unlock()

	now := time.Now()

	if visitor != "" {
		if _, hit := v.ledger.Get(visitor); hit {
			return v.count, "", false
		}
	}

	if token != "" {
		lastVisit, err := v.parseToken(token)
		if err != nil {
			// Counter faults are absorbed: an unreadable token counts as a
			// visit inside the window, and the caller still gets the
			// best-known value.
			zap.S().Warnw("unreadable visit token",
				"error", errors.ErrCounterFault().SetDetail(err.Error()),
			)

			return v.count, "", false
		}

		if now.Sub(time.UnixMilli(lastVisit)) < v.cooldown {
			return v.count, "", false
		}
	}

	v.count++

	if visitor != "" {
		v.ledger.SetDefault(visitor, now)
	}

	fresh, err := v.mintToken(now)
	if err != nil {
		zap.S().Warnw("visit token mint failed",
			"error", errors.ErrCounterFault().SetDetail(err.Error()),
		)

		return v.count, "", true
	}

	return v.count, fresh, true
}

type visitClaims struct {
	jwt.RegisteredClaims
	LastVisit int64 `json:"lvt"`
}

func (v *viewsInst) mintToken(now time.Time) (string, error) {
	jti, err := utils.GenerateRandomString(16)
	if err != nil {
		jti = now.Format(time.RFC3339Nano)
	}

	claims := visitClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       jti,
			IssuedAt: jwt.NewNumericDate(now),
		},
		LastVisit: now.UnixMilli(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func (v *viewsInst) parseToken(token string) (int64, error) {
	claims := visitClaims{}

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	return claims.LastVisit, nil
}
