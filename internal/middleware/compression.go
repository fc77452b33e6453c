// Package middleware provides HTTP middleware components for the slitting service.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. Pattern listings
// are long and repetitive JSON, so they compress to a fraction of their size.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}
