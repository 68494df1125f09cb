// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - auth: rejects requests without the X-API-Key header when server.api_key
//     is set. Swagger and /metrics are registered before it and stay public.
//   - rayid: assigns every request a ray id (reusing an incoming X-Ray-ID),
//     stores it under the "ray_id" local for logger.WithRayID and echoes it
//     in the response headers.
//
// rayid is registered first so every log line of a request carries the id.
package middleware
