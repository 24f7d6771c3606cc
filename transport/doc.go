// Package transport carries essay documents over HTTP: Client posts a
// document for review and reads back the reviewed one, Server is a small
// review endpoint built on chi.
package transport
