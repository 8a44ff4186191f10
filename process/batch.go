package processor

import (
	"os"
	"path/filepath"
	"sync"

	"textora/extractor"

	"go.uber.org/zap"
)

// BatchExtract extracts every supported document among the direct children
// of dir and collects one result per file path. Subdirectories are not
// descended into. Each file is extracted independently; a failing file is
// reported in its own result and never aborts the batch.
//
// With BatchWorkers > 1 the files are fanned out over a worker pool, which
// is safe because extractions are independent and side-effect-free.
func (c *Client) BatchExtract(dir string) map[string]*extractor.Result {
	results := make(map[string]*extractor.Result)

	entries, err := os.ReadDir(dir)
	if err != nil {
		c.logger.Error("Failed to read directory",
			zap.String("dir", dir),
			zap.Error(err))
		return results
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !c.IsSupported(path) {
			continue
		}
		paths = append(paths, path)
	}

	workers := c.config.BatchWorkers
	if workers < 1 {
		workers = 1
	}

	if workers == 1 || len(paths) < 2 {
		for _, path := range paths {
			results[path] = c.ExtractText(path)
		}
	} else {
		jobs := make(chan string)
		var wg sync.WaitGroup
		var mu sync.Mutex

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for path := range jobs {
					result := c.ExtractText(path)
					mu.Lock()
					results[path] = result
					mu.Unlock()
				}
			}()
		}

		for _, path := range paths {
			jobs <- path
		}
		close(jobs)
		wg.Wait()
	}

	c.logger.Info("Batch extraction completed",
		zap.String("dir", dir),
		zap.Int("files", len(paths)))

	return results
}
