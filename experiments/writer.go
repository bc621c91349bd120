package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"stronghold/game"
	"stronghold/searcher"
)

// MoveRecord captures one engine move and the search effort behind it.
type MoveRecord struct {
	Game    int
	Ply     int
	Player  string
	Intent  game.Intent
	Metrics searcher.SearchMetrics
}

type Writer struct {
	baseDir string
}

func NewWriter() (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "runs", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteMoves(name string, records []MoveRecord) error {
	path := filepath.Join(w.baseDir, name+"_moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "ply", "player", "intent", "nodes", "prunes", "depth", "duration_ms", "aborted"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Ply),
			r.Player,
			r.Intent.String(),
			strconv.FormatInt(r.Metrics.Nodes, 10),
			strconv.FormatInt(r.Metrics.Prunes, 10),
			strconv.Itoa(r.Metrics.Depth),
			strconv.FormatInt(r.Metrics.Duration.Milliseconds(), 10),
			strconv.FormatBool(r.Metrics.Aborted),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record: %w", err)
		}
	}
	return nil
}
