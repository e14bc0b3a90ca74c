package similarity

// Ratio computes a normalized similarity measure between two strings:
// twice the total length of all longest matching blocks divided by the
// combined length of both inputs. The result is in [0, 1], symmetric
// for equal-length inputs of swapped arguments, and 1.0 for identical
// strings. Matching is rune-based.
func Ratio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)

	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}

	// Index of positions per rune in b, consulted by the block search.
	b2j := make(map[rune][]int, len(br))
	for j, r := range br {
		b2j[r] = append(b2j[r], j)
	}

	type region struct {
		alo, ahi, blo, bhi int
	}

	matched := 0
	queue := []region{{0, len(ar), 0, len(br)}}
	for len(queue) > 0 {
		reg := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(ar, b2j, reg.alo, reg.ahi, reg.blo, reg.bhi)
		if size == 0 {
			continue
		}
		matched += size

		if reg.alo < i && reg.blo < j {
			queue = append(queue, region{reg.alo, i, reg.blo, j})
		}
		if i+size < reg.ahi && j+size < reg.bhi {
			queue = append(queue, region{i + size, reg.ahi, j + size, reg.bhi})
		}
	}

	return 2.0 * float64(matched) / float64(total)
}

// longestMatch finds the leftmost longest block of runes common to
// a[alo:ahi] and b[blo:bhi], where b2j indexes b's rune positions.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (int, int, int) {
	besti, bestj, bestsize := alo, blo, 0

	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
