// Package storage archives headless simulation runs on disk and exports
// them as JSON.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/sim"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Frames     int                `json:"frames"`
	Nodes      int                `json:"nodes"`
	Collisions int                `json:"collisions"`
	Params     physics.Params     `json:"params"`
	Metrics    map[string]float64 `json:"metrics"`
}

var csvHeader = []string{"frame", "id", "x", "y", "vx", "vy"}

// Save writes metadata.json and snapshots.csv into a new run directory and
// returns the run ID.
func (s *Store) Save(p physics.Params, result *sim.Result) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("run_%d_%d", ts.Unix(), result.Seed)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  ts,
		Seed:       result.Seed,
		Frames:     result.Frames,
		Nodes:      len(result.Final().Nodes),
		Collisions: result.Collisions,
		Params:     p,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "snapshots.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, snap := range result.Snapshots {
		frame := strconv.Itoa(snap.Frame)
		for _, n := range snap.Nodes {
			row := []string{frame, n.ID, ff(n.X), ff(n.Y), ff(n.VX), ff(n.VY)}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSnapshots reads a run's snapshots back, grouped by frame.
func (s *Store) LoadSnapshots(runID string) ([]sim.Snapshot, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "snapshots.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var snaps []sim.Snapshot
	for _, record := range records[min(1, len(records)):] {
		frame, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("bad frame %q: %w", record[0], err)
		}
		n := sim.NodeState{ID: record[1]}
		for i, dst := range []*float64{&n.X, &n.Y, &n.VX, &n.VY} {
			if *dst, err = strconv.ParseFloat(record[i+2], 64); err != nil {
				return nil, fmt.Errorf("bad %s for %s: %w", csvHeader[i+2], n.ID, err)
			}
		}

		if len(snaps) == 0 || snaps[len(snaps)-1].Frame != frame {
			snaps = append(snaps, sim.Snapshot{Frame: frame})
		}
		last := &snaps[len(snaps)-1]
		last.Nodes = append(last.Nodes, n)
	}

	return snaps, nil
}

func ff(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
