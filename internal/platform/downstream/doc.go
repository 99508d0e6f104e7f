// Package downstream is the gateway's data access layer. It issues one HTTP
// request per operation against the persistence API and translates the
// response status into either a raw JSON body or a sentinel error.
//
// Status handling per operation:
//
//	POST   200/201 ok, 400 ErrInvalidPayload, 500 ErrSaveFailed
//	GET    200 ok,     404 ErrNotFound,       500 ErrFetchFailed
//	PUT    200/204 ok, 400 ErrInvalidPayload, 404 ErrNotFound, 500 ErrSaveFailed
//	DELETE 200/204 ok, 404 ErrNotFound,       500 ErrRemoveFailed
//
// Any other status yields ErrUnexpectedStatus; transport failures yield
// ErrUnavailable.
package downstream
