// Command migrate performs the one-shot transfer of records from the legacy
// document store into the relational database. Safe to re-run: every write
// is an upsert keyed by the source identifier.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"estatecms_backend/internal/migration"
	"estatecms_backend/pkg/database"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is not set")
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "legacy"
	}

	ctx := context.Background()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	src, err := migration.NewMongoSource(connectCtx, mongoURI, mongoDB)
	if err != nil {
		log.WithError(err).Fatal("Could not reach legacy store")
	}
	defer src.Close(ctx)

	db, err := database.Connect(dbURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	runner := migration.NewRunner(db, src, log)
	report, err := runner.Run(ctx)
	if err != nil {
		os.Exit(1)
	}

	if len(report.Failures) > 0 {
		log.Warnf("%d records failed; re-run after fixing the source to pick them up", len(report.Failures))
	}
}
