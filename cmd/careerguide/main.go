package main

import (
	"flag"
	"fmt"
	"os"

	"CareerGuide/internal/chatbot"
	"CareerGuide/internal/config"
)

func main() {
	var cfg config.Config

	flag.StringVar(&cfg.DatasetPath, "dataset", "datasets/counsellor_qa.csv", "Path to the counsellor Q&A CSV")
	flag.StringVar(&cfg.ChatLogPath, "chatlog", "careerguide.db", "Path to the sqlite exchange log")
	flag.StringVar(&cfg.KeysPath, "keys", "keys.json", "Path to the optional keys.json credential file")
	flag.BoolVar(&cfg.DatasetFirst, "dataset-first", false, "Answer from the dataset before trying remote providers")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.StringVar(&cfg.UserID, "user", "local", "User id for the interactive session")

	flag.Parse()

	counsellor, err := chatbot.NewCounsellor(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize counsellor: %v\n", err)
		os.Exit(1)
	}

	if err := counsellor.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
