// Package records serves the datastore over HTTP.
//
// Every route takes the logical table name as its first path segment. Tables can be
// hidden with the server.tables allow-list.
//
//	GET    /records                    exposed entity names
//	GET    /records/:table             every document
//	GET    /records/:table/schema      declared columns
//	GET    /records/:table/last        highest primary key
//	GET    /records/:table/find        ?field=&value=[&all=true]
//	GET    /records/:table/select      ?fields=a,b
//	GET    /records/:table/ids         ?ids=1,2
//	POST   /records/:table             upsert one document
//	POST   /records/:table/insert      insert an object or an array
//	PATCH  /records/:table/:id         partial update
//	DELETE /records/:table             ?ids=1,2
//
// Not found maps to 404, an unknown table or a malformed document to 400, a key
// collision to 409, and any other failure to 500.
package records
