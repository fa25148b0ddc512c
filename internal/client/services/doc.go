// Package services contains the application services of the journal client:
// local-first entry mutations, the synchronization engine, the remote page
// fetcher, search with local fallback, the sync-status probe and the
// lifecycle controller that triggers sync opportunistically.
//
// Every service works against the narrow repository and gateway interfaces,
// so tests run on an in-memory sqlite database and hand-rolled fake clients.
package services
