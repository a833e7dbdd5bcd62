// Package blob stores image payloads in an S3-compatible object store.
// Image rows in the database carry an object key; the bytes live here.
package blob
