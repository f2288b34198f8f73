package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the cross-origin policy from config. A single "*" entry
// opens the API up completely, which is what the public price board needs.
func ConfigCORS(allowedDomains []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()

	if len(allowedDomains) == 1 && allowedDomains[0] == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = allowedDomains
	}

	conf.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}
	conf.AllowHeaders = []string{"Content-Type", "Authorization"}

	return cors.New(conf)
}
