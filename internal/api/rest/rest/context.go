package rest

import (
	"github.com/delciak/biolink/internal/constant"
	"github.com/delciak/biolink/internal/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Ctx struct {
	*fasthttp.RequestCtx
}

type APIError = errors.APIError

func (c *Ctx) JSON(status HttpStatusCode, v interface{}) APIError {
	b, err := json.Marshal(v)
	if err != nil {
		c.SetStatusCode(InternalServerError)

		return errors.ErrInternalServerError().
			SetDetail("JSON Parsing Failed").
			SetFields(errors.Fields{"JSON_ERROR": err.Error()})
	}

	c.SetStatusCode(status)
	c.SetContentType("application/json")
	c.SetBody(b)

	return nil
}

func (c *Ctx) SetStatusCode(code HttpStatusCode) {
	c.RequestCtx.SetStatusCode(int(code))
}

func (c *Ctx) StatusCode() HttpStatusCode {
	return HttpStatusCode(c.RequestCtx.Response.StatusCode())
}

// ClientIP returns the requester address resolved by the outer handler.
func (c *Ctx) ClientIP() string {
	switch t := c.UserValue(constant.ClientIP).(type) {
	case string:
		return t
	default:
		return ""
	}
}

func (c *Ctx) Log() *zap.SugaredLogger {
	return zap.S().Named("api/rest").With(
		"request_id", c.ID(),
		"route", c.Path(),
	)
}
