// Package export snapshots tables to object storage and restores them.
//
// A snapshot is the JSON array of every document in a table, stored as
// exports/<table>/<unix-nanoseconds>.json in the configured bucket. Importing a snapshot
// upserts each document, so importing into a table that still holds the rows
// overwrites them in place.
//
//	POST /exports/:table                 write a snapshot
//	GET  /exports/:table                 list snapshots
//	POST /exports/:table/import?object=  restore a snapshot
package export
