// Package server exposes a registry.Registry over JSON/HTTP.
//
// Routes:
//
//	GET    /                 plain-text banner
//	GET    /api/version      {"version": "..."}
//	GET    /api/fonts        all fonts in insertion order
//	POST   /api/fonts        create a font (201)
//	GET    /api/fonts/{id}   one font
//	PUT    /api/fonts/{id}   partial update
//	DELETE /api/fonts/{id}   delete, responds with the removed font
//
// Failures are answered with an errorBody envelope: validation problems are
// 400, unknown ids 404, everything else 500.
package server
