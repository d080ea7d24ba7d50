package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
)

// Seeds the notification_types reference table. Run once against a fresh
// database: go run scripts/seedtypes.go
func main() {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		fmt.Println("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	types := []struct {
		name        string
		description string
		priority    int
	}{
		{"email", "Job alert delivered by email", 1},
		{"in_app", "Notification shown in the app inbox", 2},
	}

	for _, t := range types {
		_, err := conn.Exec(ctx,
			`INSERT INTO notification_types (name, description, priority)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			t.name, t.description, t.priority)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Type: %s (priority %d)\n", t.name, t.priority)
	}
}
