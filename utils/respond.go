// utils/respond.go
package utils

import (
	"math/rand"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes a single user-facing error message and stops the
// handler chain.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithFieldErrors writes per-field validation messages. The caller
// stays on its current wizard step.
func RespondWithFieldErrors(c *gin.Context, errors map[string]string) {
	c.JSON(422, gin.H{"errors": errors})
}

const randomCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns n random characters for invoice numbers.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randomCharset[rand.Intn(len(randomCharset))]
	}
	return string(b)
}
