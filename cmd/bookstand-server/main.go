package main

import (
	"log"
	"net/http"
	"os"

	"bookstand/internal/logging"
	"bookstand/internal/server"
)

func main() {
	// Listen address
	addr := os.Getenv("BOOKSTAND_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Store backend: the plain in-memory slice by default, or the
	// in-memory sqlite database. Neither survives a restart.
	backend := os.Getenv("BOOKSTAND_STORE")
	if backend == "" {
		backend = "memory"
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(os.Getenv("BOOKSTAND_LOG_LEVEL")),
		Format: logging.ParseFormat(os.Getenv("BOOKSTAND_LOG_FORMAT")),
	})

	var store server.BookStore
	switch backend {
	case "memory":
		store = server.NewMemoryStore(server.SeedBooks())
	case "sqlite":
		db, err := server.OpenMemoryDB()
		if err != nil {
			log.Fatalf("failed to open db: %v", err)
		}
		if err := server.SeedDB(db, server.SeedBooks()); err != nil {
			log.Fatalf("failed to seed db: %v", err)
		}
		store = server.NewSQLiteStore(db)
	default:
		log.Fatalf("unknown store backend %q (want memory or sqlite)", backend)
	}

	api := &server.API{
		Store: store,
		Log:   logger,
	}

	logger.Info("bookstand-server listening", "addr", addr, "store", backend)

	log.Fatal(http.ListenAndServe(addr, api.Handler()))
}
