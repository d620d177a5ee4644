package crf

import "math"

// Decode performs Viterbi decoding to find the best label sequence for the
// given per-position feature strings. It returns one label per position;
// the result is empty for an empty sequence.
func (m *Model) Decode(sequence [][]string) []string {
	n := len(sequence)
	k := len(m.Labels)
	if n == 0 || k == 0 {
		return nil
	}

	// dp[i][label] = max score of any path ending at position i with label.
	dp := make([][]float64, n)
	// path[i][label] = previous label index on that best path.
	path := make([][]int, n)
	for i := range dp {
		dp[i] = make([]float64, k)
		path[i] = make([]int, k)
	}

	for label := 0; label < k; label++ {
		dp[0][label] = m.emission(sequence[0], label)
	}

	for i := 1; i < n; i++ {
		for curr := 0; curr < k; curr++ {
			emission := m.emission(sequence[i], curr)
			maxScore := math.Inf(-1)
			bestPrev := 0

			for prev := 0; prev < k; prev++ {
				score := dp[i-1][prev] + m.trans[prev][curr] + emission
				if score > maxScore {
					maxScore = score
					bestPrev = prev
				}
			}
			dp[i][curr] = maxScore
			path[i][curr] = bestPrev
		}
	}

	bestEnd := 0
	maxScore := math.Inf(-1)
	for label := 0; label < k; label++ {
		if dp[n-1][label] > maxScore {
			maxScore = dp[n-1][label]
			bestEnd = label
		}
	}

	indices := make([]int, n)
	indices[n-1] = bestEnd
	for i := n - 1; i > 0; i-- {
		indices[i-1] = path[i][indices[i]]
	}

	labels := make([]string, n)
	for i, idx := range indices {
		labels[i] = m.Labels[idx]
	}
	return labels
}

func (m *Model) emission(features []string, label int) float64 {
	score := 0.0
	for _, feat := range features {
		if weights, ok := m.feats[feat]; ok {
			if w, ok := weights[label]; ok {
				score += w
			}
		}
	}
	return score
}
