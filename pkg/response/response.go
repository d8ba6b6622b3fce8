package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	pkgErrors "model-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"model-srv/pkg/discord"
)

// OK writes a 200 response with the given body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error response. HTTPErrors keep their status code, request
// parsing and validation failures map to 400, everything else is a 500 that is
// also reported to the notifier when one is configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	switch e := err.(type) {
	case *pkgErrors.HTTPError:
		c.JSON(e.StatusCode, Resp{ErrorCode: e.StatusCode, Message: e.Message})
		return
	case validator.ValidationErrors:
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   "Invalid request body",
			Errors:    fieldErrors(e),
		})
		return
	case *json.UnmarshalTypeError, *json.SyntaxError:
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   "Malformed JSON body",
		})
		return
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   "Malformed JSON body",
		})
		return
	}

	if notifier != nil {
		_ = notifier.SendError(context.WithoutCancel(c.Request.Context()),
			"Internal server error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.SendError(context.WithoutCancel(c.Request.Context()),
			"Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func fieldErrors(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return out
}
