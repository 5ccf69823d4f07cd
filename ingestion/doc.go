// Package ingestion provides bulk loading of sentences into the local
// corpus using a bounded worker pool.
package ingestion
