package middleware

import (
	"net/http"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Static serves files from root ahead of the API routes. Only GET and HEAD
// are answered from disk; a path that is not a file (or a directory holding
// an index.html) falls through to the router. An empty root disables it.
func Static(root string) gin.HandlerFunc {
	if root == "" {
		return func(c *gin.Context) { c.Next() }
	}
	serve := static.Serve("/", static.LocalFile(root, false))
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead:
			serve(c)
		}
	}
}
