// Package entities contains the GORM models registered with the datastore.
//
// Each model is the entity schema of one table: column names, storage types,
// nullability and primary/generated flags are declared in gorm struct tags and
// read back through datastore.Store.Describe.
//
// # Entities
//
//   - Account: 'accounts' table (id, username, email, password).
//
// # Usage
//
//	store, err := datastore.Open(ctx, cfg.Database, logg, entities.All())
package entities
