package httperr

import (
	"net/http"

	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// publicErrors carry messages clients may see.
var publicErrors = []error{
	commands.ErrCustomerNotFound,
	commands.ErrPrizeNotFound,
}

// AbortWithClass answers with the status of err's failure class.
func AbortWithClass(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}

// StatusOf maps err's failure class to a status and a client-safe message.
// Integrity failures are server faults and carry no detail.
func StatusOf(err error) (int, string) {
	switch errs.Class(err) {
	case errs.ErrValidation:
		// validation chains are rooted at a domain sentinel
		return http.StatusBadRequest, errs.Cause(err).Error()
	case errs.ErrNotFound:
		return http.StatusNotFound, publicMessage(err, "Not found")
	case errs.ErrTransient:
		return http.StatusServiceUnavailable, "Service temporarily unavailable, please retry"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func publicMessage(err error, fallback string) string {
	for _, p := range publicErrors {
		if errs.Is(err, p) {
			return p.Error()
		}
	}
	return fallback
}
