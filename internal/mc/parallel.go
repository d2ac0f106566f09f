package mc

import (
	"sync"

	"golang.org/x/exp/rand"
)

// generateParallel fans path generation out over the configured workers.
// Paths are striped across goroutines; each path still draws from its own
// (seed, index) substream, so the ensemble is identical to the sequential
// loop.
func (s *Simulator[P]) generateParallel(paths []P, gen func(rng *rand.Rand) P) {
	workers := s.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(paths); i += workers {
				paths[i] = gen(s.pathRand(i))
			}
		}(w)
	}
	wg.Wait()
}
