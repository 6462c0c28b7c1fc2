// Package palette exposes the palette generation engine over HTTP.
//
// Generated palettes are cached by seed and harmony, and can be rendered as
// JSON, CSS custom properties, SCSS variables, or a design-token document
// that the tokens feature reads back.
//
// # HTTP Endpoints
//
//   - GET /palette?seed=%23RRGGBB&harmony=analogous&format=json|css|scss|tokens
//   - POST /palette/:name?seed=...&harmony=... : stores the palette as token document <name>.
package palette
