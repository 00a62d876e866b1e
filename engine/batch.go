package engine

import "fmt"

// ConvertAll converts the given LHE files into Arrow IPC files under
// outDir, using the given number of workers. It returns one Result per
// input path, in completion order.
func ConvertAll(paths []string, outDir string, workers int) []Result {
	pool := NewPool("convert", workers)

	go func() {
		for i, path := range paths {
			job := &Job{
				ID:     fmt.Sprintf("job-%d", i),
				Path:   path,
				OutDir: outDir,
			}
			if err := pool.Submit(job); err != nil {
				return
			}
		}
	}()

	results := make([]Result, 0, len(paths))
	for range paths {
		r, ok := <-pool.Results()
		if !ok {
			break
		}
		results = append(results, *r)
	}

	pool.Shutdown()
	return results
}
