// Package middleware groups the fiber middleware of the service.
//
// rayid tags every request with an X-Ray-ID header and a ray_id local; auth checks
// X-API-Key when a key is configured. Ray ids are installed first so rejected
// requests are still traceable.
package middleware
