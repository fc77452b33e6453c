package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines route groups that can be mounted without
// authentication, the default mode for the calculation API.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines route groups mounted behind JWT or API key
// authentication.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

var (
	_ PublicRouteGroup    = (*SlittingRoutes)(nil)
	_ ProtectedRouteGroup = (*SlittingRoutes)(nil)
)
