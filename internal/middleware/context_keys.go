package middleware

import "github.com/gin-gonic/gin"

// subjectKey is the key used to store the authenticated subject in the
// request context.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated subject (the JWT sub
// claim) from the request context. It returns the subject and a boolean
// indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subVal := c.Request.Context().Value(subjectKey)
	if subVal == nil {
		return "", false
	}

	sub, ok := subVal.(string)
	if !ok {
		// This should not happen if the auth middleware sets it correctly.
		return "", false
	}
	return sub, true
}
