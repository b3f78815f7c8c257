// Package datastore is the data access layer of the game server.
//
// A Store owns one database connection and a fixed registry of entities (GORM models).
// Every operation takes the logical table name, which may be the entity name
// ("Account") or the table name ("accounts"), and delegates to GORM.
//
// # Construction
//
// Open validates the configuration, connects, synchronizes the registered schemas and
// returns a ready Store. There is no package-level connection: callers own the Store
// and pass it to whatever needs data access.
//
//	store, err := datastore.Open(ctx, cfg.Database, logg, entities.All(),
//	    datastore.WithReadyHook(func(*datastore.Store) { logg.Info("ready") }))
//
// # Results
//
// Operations return (value, error). A lookup that matched nothing reports ErrNotFound;
// anything else is a failure wrapped in *OpError. Key collisions unwrap to ErrDuplicate.
// Every failure is logged before it is returned.
//
//	acc, err := store.FetchData(ctx, "Account", "username", "a")
//	switch {
//	case datastore.IsNotFound(err):
//	    // no such account
//	case err != nil:
//	    // query failed
//	}
//
// Arguments documented as "one id or a slice of ids" (and the same for field names)
// treat a scalar exactly like a one-element slice.
//
// # Typed access
//
// For binds a table to its model type so results need no assertions:
//
//	accounts, _ := datastore.For[entities.Account](store, "Account")
//	acc, err := accounts.FetchData(ctx, "email", "a@x.com")
package datastore
