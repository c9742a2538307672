// Package http exposes the site runtime as a small JSON API on net/http.
//
// Routes mount under a base path (default /api):
//   - Content: GET /content/{path...}, optional ?password=
//   - Navigation: GET /navigation, GET /recent, GET /featured
//   - Presentation: GET /layout/{page}, GET /theme
//   - Contact form: POST /contact
//
// Host applications register the routes on their own *http.ServeMux.
package http
