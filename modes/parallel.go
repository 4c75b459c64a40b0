package modes

import (
	"runtime"
	"sync"
)

// parallelThreshold is the block count from which independent block
// transforms (ECB, CTR, CBC decryption) are split across goroutines.
var parallelThreshold = 4096

// forEachRange calls fn over [0, n) either once or, for large n, on disjoint
// contiguous sub-ranges from separate goroutines. fn must only write to
// output locations derived from its own range.
func forEachRange(n int, fn func(lo, hi int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < parallelThreshold || workers < 2 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
