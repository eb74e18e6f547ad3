package geometry

import "sort"

// Interval is a closed 1D range [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

// Len returns Hi-Lo, or 0 for an inverted interval.
func (iv Interval) Len() float64 {
	if iv.Hi < iv.Lo {
		return 0
	}

	return iv.Hi - iv.Lo
}

// Merge sorts ivs and fuses overlapping or touching ranges.
func Merge(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if iv.Len() > 0 {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	var out []Interval
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Lo <= out[n-1].Hi+Eps {
			if iv.Hi > out[n-1].Hi {
				out[n-1].Hi = iv.Hi
			}
			continue
		}
		out = append(out, iv)
	}

	return out
}

// Subtract removes every cut from iv and returns what is left, in order.
// Pieces shorter than Eps are dropped.
func (iv Interval) Subtract(cuts []Interval) []Interval {
	rest := []Interval{iv}
	for _, c := range Merge(cuts) {
		next := rest[:0:0]
		for _, r := range rest {
			if c.Hi <= r.Lo || c.Lo >= r.Hi {
				next = append(next, r)
				continue
			}
			if c.Lo-r.Lo > Eps {
				next = append(next, Interval{Lo: r.Lo, Hi: c.Lo})
			}
			if r.Hi-c.Hi > Eps {
				next = append(next, Interval{Lo: c.Hi, Hi: r.Hi})
			}
		}
		rest = next
	}

	return rest
}
