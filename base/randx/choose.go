// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// ChooseDistinct returns k distinct indexes in [0,n) drawn at random,
// in the order they were drawn. If k >= n, all n indexes are returned
// in a random order. It performs a partial Fisher-Yates shuffle so it
// needs exactly min(k, n) draws.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func ChooseDistinct(n, k int, randOpt ...Rand) []int {
	rnd := randOrGlobal(randOpt)
	k = min(k, n)
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

func randOrGlobal(randOpt []Rand) Rand {
	if len(randOpt) == 0 {
		return NewGlobalRand()
	}
	return randOpt[0]
}
