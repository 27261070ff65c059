package stub

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// errorBody is the error envelope both stubbed services share. Clients read
// "error" and "detail" with operation-specific precedence, so handlers decide
// per case which fields to fill.
type errorBody struct {
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func apiError(c echo.Context, status int, code, detail string) error {
	return c.JSON(status, errorBody{Error: code, Detail: detail})
}

// newErrorHandler renders every unhandled error in the shared envelope.
// Echo's own errors (bind failures, unknown routes, middleware rejections)
// land here; their message goes into "detail".
func newErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorBody{
				Error:  http.StatusText(he.Code),
				Detail: fmt.Sprintf("%v", he.Message),
			})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, errorBody{
			Error:  "Internal Server Error",
			Detail: "internal server error",
		})
	}
}
