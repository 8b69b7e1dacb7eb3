package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/sim"
)

type ExportData struct {
	Seed       int64              `json:"seed"`
	Frames     int                `json:"frames"`
	Collisions int                `json:"collisions"`
	Params     physics.Params     `json:"params"`
	Snapshots  []sim.Snapshot     `json:"snapshots"`
	Metrics    map[string]float64 `json:"metrics"`
}

func exportData(p physics.Params, result *sim.Result) ExportData {
	return ExportData{
		Seed:       result.Seed,
		Frames:     result.Frames,
		Collisions: result.Collisions,
		Params:     p,
		Snapshots:  result.Snapshots,
		Metrics:    result.Metrics,
	}
}

func ExportJSON(path string, p physics.Params, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, p, result)
}

func WriteJSON(w io.Writer, p physics.Params, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(p, result))
}
