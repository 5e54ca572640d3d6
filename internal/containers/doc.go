// Package containers provides concrete collections and the generators used
// to run the collection battery against them.
package containers
