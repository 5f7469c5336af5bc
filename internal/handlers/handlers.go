package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ukozhakova/Django2021-Endterm/internal/auth"
	"github.com/ukozhakova/Django2021-Endterm/internal/storage"
)

// Store is the image backend. main swaps in the configured one; tests point
// it at a temp dir.
var Store storage.Storage = &storage.Disk{Dir: "media"}

func actor(c *gin.Context) string {
	if user, ok := auth.CurrentUser(c); ok {
		return user.Username
	}
	return "anonymous"
}
