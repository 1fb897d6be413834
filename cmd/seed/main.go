package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"bookcatalog/internal/app"
	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logger"
)

var (
	titles   = []string{"The Great Gatsby", "Moby Dick", "Middlemarch", "Beloved", "Ulysses", "Dune", "Emma", "Kindred", "Persuasion", "Solaris"}
	comments = []string{"Great book!", "Could not put it down", "Slow start", "Re-read every year", "Overrated", "A classic"}
)

func main() {
	count := flag.Int("count", 10, "Number of books to insert")
	reset := flag.Bool("reset", false, "Delete every book before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Setup(os.Stderr, cfg.Log.Level, "text")

	ctx := context.Background()
	store, closeStore, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Error("cannot open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if *reset {
		n, err := store.DeleteAll(ctx)
		if err != nil {
			log.Error("cannot reset store", "error", err)
			closeStore()
			os.Exit(1)
		}
		log.Info("store reset", "deleted", n)
	}

	inserted, err := seed(ctx, store, *count, rand.New(rand.NewSource(rand.Int63())))
	if err != nil {
		log.Error("seed failed", "inserted", inserted, "error", err)
		closeStore()
		os.Exit(1)
	}
	log.Info("seed complete", "inserted", inserted, "driver", cfg.Store.Driver)
}

// seed inserts count books with up to three comments each and returns how
// many were inserted.
func seed(ctx context.Context, store book.Store, count int, rng *rand.Rand) (int, error) {
	for i := 0; i < count; i++ {
		b := book.New(fmt.Sprintf("%s #%d", titles[rng.Intn(len(titles))], i+1))
		for n := rng.Intn(4); n > 0; n-- {
			b.AddComment(comments[rng.Intn(len(comments))])
		}
		if _, err := store.Insert(ctx, &b); err != nil {
			return i, fmt.Errorf("insert book %d: %w", i+1, err)
		}
	}
	return count, nil
}
