package apperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Fail writes err to the response. Business errors surface their own
// message with the mapped status; anything else is logged under msg and
// the client only sees a 500.
func Fail(c *gin.Context, err error, msg string) {
	if IsBusiness(err) {
		c.JSON(Status(err), gin.H{"error": err.Error()})
		return
	}
	log.Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
}
