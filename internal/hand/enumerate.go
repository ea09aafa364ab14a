package hand

// ForEach calls fn once for every sorted size-card subset of {0..DeckSize),
// in lexicographic order, via the rightward-carry algorithm: advance the
// rightmost card that still has headroom, then reset every card to its
// right to consecutive successors. size == 0 emits exactly one empty hand.
func ForEach(size uint8, fn func(Hand)) {
	h := Hand{Size: size}
	for i := uint8(0); i < size; i++ {
		h.Cards[i] = i
	}
	fn(h)

	if size == 0 {
		return
	}

	for {
		i := int(size) - 1
		h.Cards[i]++

		for h.Cards[i] > uint8(DeckSize+i-int(size)) {
			i--
			if i < 0 {
				return
			}
			h.Cards[i]++
		}

		for ; i < int(size)-1; i++ {
			h.Cards[i+1] = h.Cards[i] + 1
		}

		fn(h)
	}
}

// Count returns C(DeckSize, size), the number of hands ForEach will emit.
func Count(size uint8) int64 {
	n, k := int64(DeckSize), int64(size)
	if k > n || k < 0 {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := int64(0); i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// ForEachNext calls fn for every legal successor of hand: the same cards
// plus one additional card not already present, still sorted. hand must be
// sorted and have fewer than MaxSize cards. Successors are built by
// slot-shifting rather than re-sorting from scratch each time, so the gaps
// between existing cards are visited from the highest gap down to the
// lowest, with the new card ascending within each gap (for {1,3,5}: 6..51,
// then 4, 2, 0).
func ForEachNext(h Hand, fn func(card Card, next Hand)) {
	next := h
	next.Size = h.Size + 1

	for i := int(h.Size); i >= 0; i-- {
		var start Card
		if i == 0 {
			start = 0
		} else {
			start = h.Cards[i-1] + 1
		}
		var end Card
		if i == int(h.Size) {
			end = DeckSize
		} else {
			end = h.Cards[i]
		}

		for card := start; card < end; card++ {
			next.Cards[i] = card
			fn(card, next)
		}

		if i != 0 {
			next.Cards[i] = next.Cards[i-1]
		}
	}
}
