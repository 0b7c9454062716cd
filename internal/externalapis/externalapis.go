package externalapis

import (
	"fmt"
	"io"
	"net/http"

	"github.com/delciak/biolink/internal/global"
	jsoniter "github.com/json-iterator/go"
)

// LanyardAPIBase is the default upstream; config may point it elsewhere
// (tests do).
var LanyardAPIBase = "https://api.lanyard.rest/v1"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (lanyard) LanyardAPIRequest(gctx global.Context, method string, route string) (*http.Request, error) {
	base := gctx.Config().Lanyard.APIBase
	if base == "" {
		base = LanyardAPIBase
	}

	uri := fmt.Sprintf("%s%s", base, route)

	return http.NewRequestWithContext(gctx, method, uri, nil)
}

// ReadRequestResponse: quick utility for decoding an api response to a struct
func ReadRequestResponse(resp *http.Response, out interface{}) error {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(b, out); err != nil {
		return err
	}

	return nil
}
