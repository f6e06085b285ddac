package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campusdesk/complaint-api/pkg/errors"
)

// JSON sends a success payload as-is. Endpoint contracts in this API are
// flat objects rather than a shared envelope, so no wrapping happens here.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, payload)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Error converts err to the wire contract. Credential failures keep the
// {success,message} shape the login endpoints promise; everything else
// renders {"error": message} with the mapped status code.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	if appErr.Code == appErrors.ErrInvalidCredentials.Code {
		c.JSON(appErr.Status, gin.H{"success": false, "message": appErr.Message})
		return
	}
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
