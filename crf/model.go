// Package crf implements a linear-chain conditional random field scorer for
// sequence labeling. Training happens elsewhere; this package only loads a
// persisted model and decodes label sequences from it.
package crf

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Model represents a linear chain CRF model over a fixed label vocabulary.
type Model struct {
	// Labels is the closed label vocabulary, in index order.
	Labels []string

	// trans[from][to] = transition weight between adjacent labels.
	trans [][]float64
	// feats[feature_string][label_index] = emission weight.
	feats map[string]map[int]float64

	labelIndex map[string]int
}

// NewModel creates an empty model over the given label vocabulary.
func NewModel(labels []string) *Model {
	trans := make([][]float64, len(labels))
	for i := range trans {
		trans[i] = make([]float64, len(labels))
	}
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	return &Model{
		Labels:     labels,
		trans:      trans,
		feats:      make(map[string]map[int]float64),
		labelIndex: index,
	}
}

// Load reads a text-based model file. Format lines:
//
//	T from_label to_label weight
//	F feature_string label weight
//
// Blank lines and lines starting with "#" are skipped, as are lines naming
// labels outside the model's vocabulary.
func (m *Model) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}

		switch parts[0] {
		case "T":
			from, okFrom := m.labelIndex[parts[1]]
			to, okTo := m.labelIndex[parts[2]]
			weight, err := strconv.ParseFloat(parts[3], 64)
			if err == nil && okFrom && okTo {
				m.trans[from][to] = weight
			}
		case "F":
			feat := parts[1]
			label, ok := m.labelIndex[parts[2]]
			weight, err := strconv.ParseFloat(parts[3], 64)
			if err == nil && ok {
				if m.feats[feat] == nil {
					m.feats[feat] = make(map[int]float64)
				}
				m.feats[feat][label] = weight
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading model %s: %w", path, err)
	}
	return nil
}

// SetTransition sets the transition weight between two labels. Unknown
// labels are ignored.
func (m *Model) SetTransition(from, to string, weight float64) {
	i, okFrom := m.labelIndex[from]
	j, okTo := m.labelIndex[to]
	if okFrom && okTo {
		m.trans[i][j] = weight
	}
}

// SetFeature sets the emission weight of a feature string for a label.
// Unknown labels are ignored.
func (m *Model) SetFeature(feat, label string, weight float64) {
	i, ok := m.labelIndex[label]
	if !ok {
		return
	}
	if m.feats[feat] == nil {
		m.feats[feat] = make(map[int]float64)
	}
	m.feats[feat][i] = weight
}

// FeatureCount reports the number of distinct feature strings with weights.
func (m *Model) FeatureCount() int {
	return len(m.feats)
}
