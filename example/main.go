package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jpalmerr/blackboard"
)

type playerState struct {
	Name   string
	Health int
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	b, err := blackboard.New(blackboard.WithLogger(logger))
	if err != nil {
		slog.Error("failed to create board", "error", err)
		os.Exit(1)
	}

	// independent systems can watch a key without knowing who writes it
	_ = blackboard.SubscribeValue(b, "player", func(p playerState) {
		if p.Health < 20 {
			fmt.Printf("ALERT: %s is nearly down (%d hp)\n", p.Name, p.Health)
		}
	})
	_ = blackboard.SubscribePair(b, "score", func(key string, v int) {
		fmt.Printf("%s is now %d\n", key, v)
	})

	// the same key holds independent values per type
	_ = blackboard.Write(b, "score", 10)
	_ = blackboard.Write(b, "score", 0.5) // float64, separate from the int

	_ = blackboard.Write(b, "player", playerState{Name: "ada", Health: 80})
	_ = blackboard.Write(b, "player", playerState{Name: "ada", Health: 15})

	score, err := blackboard.Read[int](b, "score")
	if err != nil {
		slog.Error("failed to read score", "error", err)
		os.Exit(1)
	}
	fmt.Println("final int score:", score)

	// wiping the key in one store leaves the other type's value alone
	_ = blackboard.WipeTypeKey[int](b, "score")
	if _, err := blackboard.Read[int](b, "score"); blackboard.IsKeyNotFound(err) {
		fmt.Println("int score wiped")
	}
	if ratio, err := blackboard.Read[float64](b, "score"); err == nil {
		fmt.Println("float score survived:", ratio)
	}
}
