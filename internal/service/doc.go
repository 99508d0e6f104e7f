// Package service implements the controller layer of the gateway: it turns
// a decoded request body into a whitelisted, normalised and validated
// payload and delegates the persistence work to the downstream API.
package service
