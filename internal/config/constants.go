package config

// DefaultDatabasePath is where the sqlite catalog lives unless
// DATABASE_PATH overrides it.
const DefaultDatabasePath = "./catalog.db"
