package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gulfwash/carwash-scheduler/internal/httperr"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid "+name+" parameter.")
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// writeError maps core errors onto HTTP responses. Unknown errors are
// reported as internal without leaking details.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		switch be.Code {
		case httperr.CodeBookingNotFound,
			httperr.CodeServiceNotFound,
			httperr.CodeEmployeeNotFound,
			httperr.CodeFlagNotFound:
			httperr.NotFound(c, be.Code, msg)
		case httperr.CodePersistenceConflict:
			httperr.Conflict(c, be.Code, msg)
		default:
			httperr.BadRequest(c, be.Code, msg)
		}
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong.")
}
