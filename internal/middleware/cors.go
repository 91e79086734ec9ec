package middleware

import "github.com/labstack/echo/v4"

// CORS stamps the permissive cross-origin headers onto every response,
// errors included, so browser clients served from other origins can load
// representations of our resources.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
			h.Set("Access-Control-Allow-Methods", "GET,PUT,POST,DELETE")
			return next(c)
		}
	}
}
