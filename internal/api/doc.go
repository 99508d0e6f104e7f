// Package api exposes the gateway's resources over HTTP.
//
// Every collection in the domain catalogue gets the same set of routes:
//
//	POST   /{collection}
//	GET    /{collection}
//	GET    /{collection}/{id}
//	PUT    /{collection}/{id}       (updatable collections only)
//	DELETE /{collection}/{id}
//
// Connectors additionally get, for each of their two sides,
//
//	GET    /{collection}/{side}/{id}
//	DELETE /{collection}/{side}/{id}
//
// which list or delete every connector whose side id equals {id}.
package api
