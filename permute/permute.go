package permute

// Permute scrambles data in place using a Durstenfeld (Fisher-Yates)
// shuffle keyed by seed: for i from len(data)-1 down to 1, pick j =
// Intn(i) in [0, i] and swap data[i], data[j]. See Unpermute for the
// exact inverse.
func Permute(data []byte, seed uint16) {
	g := NewLCG(seed)
	for i := len(data) - 1; i >= 1; i-- {
		j := g.Intn(i)
		data[i], data[j] = data[j], data[i]
	}
}

// Unpermute reverses Permute bit-exactly. It reseeds a fresh generator
// with the same seed, replays the same draw sequence j[i] for i from
// len(data)-1 down to 1 (identical draw order to Permute, since j[i]
// depends only on i and the PRNG stream, never on the data being
// shuffled), and then re-applies those swaps in ascending index order.
// Swapping is its own inverse, so replaying the same pairs in reverse
// application order exactly undoes the forward shuffle.
func Unpermute(data []byte, seed uint16) {
	n := len(data)
	if n == 0 {
		return
	}
	g := NewLCG(seed)
	js := make([]int, n)
	for i := n - 1; i >= 1; i-- {
		js[i] = g.Intn(i)
	}
	for i := 1; i < n; i++ {
		j := js[i]
		data[i], data[j] = data[j], data[i]
	}
}
