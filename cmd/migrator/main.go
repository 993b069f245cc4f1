package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/database"
)

func main() {
	log := logrus.New()
	if !config.Development() {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	url, err := config.DbURL("")
	if err != nil {
		log.WithError(err).Error("database is not configured")
		os.Exit(1)
	}

	migrator, err := database.Migrate(url, database.Migrations)
	if err != nil {
		log.WithError(err).Error("failed to migrate")
		os.Exit(1)
	}
	defer migrator.Close()

	version, dirty, err := migrator.Version()
	if err != nil {
		log.WithError(err).Error("failed to check migration version")
		return
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}
