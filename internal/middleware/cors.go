package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// devOrigins are always allowed.
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// lanOrigins match front-end dev servers reached over a private network.
var lanOrigins = []*regexp.Regexp{
	regexp.MustCompile(`^http://192\.168\.\d+\.\d+:5173$`),
	regexp.MustCompile(`^http://192\.168\.\d+\.\d+:3000$`),
	regexp.MustCompile(`^http://10\.\d+\.\d+\.\d+:5173$`),
	regexp.MustCompile(`^http://172\.16\.\d+\.\d+:5173$`),
}

// CORS allows credentialed requests from the development origins, private
// network front-ends and any origin listed in extra (comma-separated).
func CORS(extra string) fiber.Handler {
	origins := append([]string{}, devOrigins...)
	for _, o := range strings.Split(extra, ",") {
		if o = strings.TrimSpace(o); o != "" && o != "*" {
			origins = append(origins, o)
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowOriginsFunc: AllowLANOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		AllowCredentials: true,
	})
}

// AllowLANOrigin reports whether origin is a private-network dev server.
func AllowLANOrigin(origin string) bool {
	for _, re := range lanOrigins {
		if re.MatchString(origin) {
			return true
		}
	}
	return false
}
