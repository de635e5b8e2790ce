package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Entry is one question/answer pair from the counsellor dataset. Questions
// are lower-cased and trimmed at load time.
type Entry struct {
	Question string
	Answer   string
}

// Load reads the counsellor Q&A CSV at path. The file must have "question"
// and "answer" header columns. Any load problem is logged and the built-in
// fallback corpus is returned instead; the dataset is never a fatal
// dependency.
func Load(path string, logger *slog.Logger) []Entry {
	pairs, err := readCSV(path)
	if err != nil {
		logger.Warn("failed to load counsellor dataset, using built-in pairs", "path", path, "error", err)
		return FallbackPairs()
	}
	if len(pairs) == 0 {
		logger.Warn("counsellor dataset is empty, using built-in pairs", "path", path)
		return FallbackPairs()
	}
	logger.Info("loaded counsellor dataset", "path", path, "pairs", len(pairs))
	return pairs
}

func readCSV(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	qCol, aCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "question":
			qCol = i
		case "answer":
			aCol = i
		}
	}
	if qCol < 0 || aCol < 0 {
		return nil, fmt.Errorf("dataset is missing question/answer columns")
	}

	var pairs []Entry
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	for _, rec := range records {
		if qCol >= len(rec) || aCol >= len(rec) {
			continue
		}
		question := strings.ToLower(strings.TrimSpace(rec[qCol]))
		answer := strings.TrimSpace(rec[aCol])
		if question == "" || answer == "" {
			continue
		}
		pairs = append(pairs, Entry{Question: question, Answer: answer})
	}
	return pairs, nil
}
