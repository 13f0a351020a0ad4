package main

import (
	"flag"
	"log"

	"travelapp/config"
	"travelapp/database"
	"travelapp/seeder"
)

func main() {
	defaults := seeder.DefaultConfig()

	listings := flag.Int("listings", defaults.Listings, "number of listings to create")
	bookings := flag.Int("bookings", defaults.Bookings, "number of bookings to create")
	reviews := flag.Int("reviews", defaults.Reviews, "number of reviews to create")
	clear := flag.Bool("clear", false, "clear existing data before seeding")
	flag.Parse()

	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	_, err := seeder.Run(database.Database.Db, seeder.Config{
		Listings: *listings,
		Bookings: *bookings,
		Reviews:  *reviews,
		Clear:    *clear,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
