// Command initdb creates the schema and the default admin account.
package main

import (
	"log"

	"portfolio-site/config"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ open database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("❌ migrate: %v", err)
	}
	config.SeedDatabase(db)
	log.Printf("✅ Database initialized (%s)", cfg.DBDriver)
}
