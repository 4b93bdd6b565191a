package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/deduu/Youtube-audio-transcription/errors"
	"github.com/deduu/Youtube-audio-transcription/format"
)

// audioExtensions are the file types picked up when expanding a
// directory into batch sources.
var audioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".mp4":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
	".webm": true,
}

// BatchResult aggregates a batch run. Results holds one entry per
// source in input order; failed sources carry their error in Result.Err.
// Records holds one pipe-delimited line per successful source, also in
// input order.
type BatchResult struct {
	Results []Result
	Records []string
}

// ProcessBatch runs every source through the pipeline with bounded
// parallelism. A failing source does not abort the batch; its error is
// recorded on its Result. ProcessBatch itself fails only when the
// context is cancelled or no sources are given.
func (p *Pipeline) ProcessBatch(ctx context.Context, sources []string, opts Options) (*BatchResult, error) {
	if len(sources) == 0 {
		return nil, apperrors.MissingField("sources")
	}

	results := make([]Result, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.ProcessSource(gctx, source, opts)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				results[i] = Result{Source: source, Err: err}
				return nil
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchResult{Results: results}
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		batch.Records = append(batch.Records, format.BatchRecord(res.Source, res.Utterances))
	}
	return batch, nil
}

// ExpandSources resolves each argument into concrete sources: URLs and
// files pass through, directories expand to the audio files they
// contain (non-recursive, sorted by name).
func ExpandSources(args []string) ([]string, error) {
	var sources []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			sources = append(sources, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, apperrors.Internal("Failed to read the input directory.").WithCause(err)
		}
		var found []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if audioExtensions[ext] {
				found = append(found, filepath.Join(arg, entry.Name()))
			}
		}
		sort.Strings(found)
		sources = append(sources, found...)
	}
	if len(sources) == 0 {
		return nil, apperrors.NotFound("audio source", "")
	}
	return sources, nil
}
