// Package mongodb provides MongoDB-backed implementations of the store
// interfaces. Uploads and finalized courses share the courses collection
// and are told apart by the presence of the objectives field; modules
// live flat in their own collection, keyed by module ID.
package mongodb
