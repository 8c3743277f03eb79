// Package convert: TOML manifest for batch conversion.
package convert

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-logr/logr"

	"github.com/katalvlaran/snapcsr/snap"
)

// manifest mirrors the on-disk TOML layout; see the package documentation
// for the grammar.
type manifest struct {
	Defaults manifestDefaults `toml:"defaults"`
	Jobs     []manifestJob    `toml:"job"`
}

type manifestDefaults struct {
	Undirected string `toml:"undirected"`
	Sort       bool   `toml:"sort"`
}

type manifestJob struct {
	Input        string `toml:"input"`
	OutputPrefix string `toml:"output_prefix"`
	Undirected   string `toml:"undirected"`
	Sort         *bool  `toml:"sort"`
	WeightValue  *int64 `toml:"weight_value"`
}

// LoadManifest reads a TOML manifest and resolves each [[job]] into run
// Options, applying the [defaults] table to omitted settings. Jobs missing
// an input or output prefix fail here, before any conversion starts.
func LoadManifest(path string) ([]Options, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifest, path, err)
	}
	if len(m.Jobs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrManifestEmpty, path)
	}

	defaultMode := snap.ModeAuto
	if m.Defaults.Undirected != "" {
		var err error
		if defaultMode, err = snap.ParseMode(m.Defaults.Undirected); err != nil {
			return nil, fmt.Errorf("%w: %s: defaults: %w", ErrManifest, path, err)
		}
	}

	jobs := make([]Options, 0, len(m.Jobs))
	for i, j := range m.Jobs {
		if j.Input == "" {
			return nil, fmt.Errorf("%w: %s: job %d: %w", ErrManifest, path, i+1, ErrNoInput)
		}
		if j.OutputPrefix == "" {
			return nil, fmt.Errorf("%w: %s: job %d: %w", ErrManifest, path, i+1, ErrNoPrefix)
		}

		mode := defaultMode
		if j.Undirected != "" {
			var err error
			if mode, err = snap.ParseMode(j.Undirected); err != nil {
				return nil, fmt.Errorf("%w: %s: job %d: %w", ErrManifest, path, i+1, err)
			}
		}
		sort := m.Defaults.Sort
		if j.Sort != nil {
			sort = *j.Sort
		}

		jobs = append(jobs, Options{
			Input:         j.Input,
			OutputPrefix:  j.OutputPrefix,
			Undirected:    mode,
			SortNeighbors: sort,
			WeightValue:   j.WeightValue,
		})
	}

	return jobs, nil
}

// RunAll executes jobs sequentially, stopping at the first failure. The
// summaries of all completed jobs are returned alongside the error, so a
// caller can report progress before the failing job.
func RunAll(jobs []Options, log logr.Logger) ([]*Summary, error) {
	summaries := make([]*Summary, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		if job.Logger.GetSink() == nil {
			job.Logger = log
		}
		s, err := Run(job)
		if err != nil {
			return summaries, fmt.Errorf("job %d (%s): %w", i+1, job.Input, err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}
