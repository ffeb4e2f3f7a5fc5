// Package all wires every built-in storage backend into the storage factory.
//
// The package exists purely for side effects: a blank import runs the init
// functions of each backend, which register their factories with the storage
// package. A binary that only needs a subset can import the backends it wants
// directly instead.
package all

import (
	_ "jvsql/internal/storage/duckdb"
	_ "jvsql/internal/storage/mysql"
	_ "jvsql/internal/storage/postgres"
	_ "jvsql/internal/storage/sqlite"
)
