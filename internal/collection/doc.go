// Package collection specializes the per-size builder for collections. It
// supplies the collection test battery and, for serializable collections,
// a reserialized suite per size branch.
package collection
