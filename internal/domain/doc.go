// Package domain contains the payload shapes the gateway accepts for each
// downstream collection, their normalisation and validation rules, and the
// catalogue that ties a collection name to its payload and routes.
//
// The gateway does not own persistence: an Entity is the whitelisted,
// validated subset of a request body that is forwarded downstream.
package domain
