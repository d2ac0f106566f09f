package mc

import "testing"

func TestPathSeed_DistinctAcrossIndices(t *testing.T) {
	seen := make(map[uint64]int)
	for i := 0; i < 10000; i++ {
		s := pathSeed(42, i)
		if prev, dup := seen[s]; dup {
			t.Fatalf("indices %d and %d collide on seed %d", prev, i, s)
		}
		seen[s] = i
	}
}

func TestPathSeed_DependsOnMaster(t *testing.T) {
	if pathSeed(1, 0) == pathSeed(2, 0) {
		t.Error("different master seeds should derive different path seeds")
	}
}

func TestPathSeed_Stable(t *testing.T) {
	if pathSeed(42, 7) != pathSeed(42, 7) {
		t.Error("seed derivation must be a pure function")
	}
}
