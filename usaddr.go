// Package usaddr parses unstructured United States address strings into
// labeled components. Raw text is tokenized, each token is mapped to a
// feature set with neighbor context, a sequence labeling model assigns one
// component label per token, and contiguous label runs are reassembled into
// component strings plus a coarse address type classification.
//
// The pipeline does not validate addresses against a postal database and
// does not geocode; it reproduces whatever labeling the model returns,
// subject to the rule that a label's tokens form one contiguous run.
package usaddr

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/usaddr-parse/crf"
)

// DefaultModelFile is the well-known model artifact name, looked for in the
// working directory unless USADDR_MODEL points elsewhere.
const DefaultModelFile = "usaddr.model"

const intersectionSeparator = "IntersectionSeparator"

// TaggedToken pairs a token with the label the sequence labeler assigned it.
type TaggedToken struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

// TaggedComponent is one reassembled address component. Components are
// returned in first-occurrence order of their labels.
type TaggedComponent struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Labeler assigns one label per feature set, drawn from the Labels
// vocabulary. Implementations are expected to be CPU-bound and synchronous;
// this layer applies no retry or timeout around them.
type Labeler interface {
	Predict(sequence []FeatureSet) ([]string, error)
}

// Parser converts address strings into labeled components. A Parser without
// a labeler is degraded: Parse and Tag fail with ErrModelNotAvailable for
// any non-empty input. Safe for concurrent use.
type Parser struct {
	labeler Labeler
}

// NewParser creates a parser around an explicit labeler.
func NewParser(labeler Labeler) *Parser {
	return &Parser{labeler: labeler}
}

// DefaultModelPath returns the model path from USADDR_MODEL, falling back
// to DefaultModelFile in the working directory.
func DefaultModelPath() string {
	if path := os.Getenv("USADDR_MODEL"); path != "" {
		return path
	}
	return DefaultModelFile
}

// NewParserFromModel loads the CRF model at path and wraps it in a parser.
// A missing or unreadable model does not fail construction: a warning is
// logged and the returned parser is degraded, so later Parse and Tag calls
// fail with ErrModelNotAvailable instead of the process crashing at startup.
func NewParserFromModel(path string) *Parser {
	model := crf.NewModel(Labels)
	if err := model.Load(path); err != nil {
		log.Printf("warning: address model %s could not be loaded (%v); train a model and install it before calling Parse or Tag", path, err)
		return &Parser{}
	}
	return &Parser{labeler: &crfLabeler{model: model}}
}

// Ready reports whether the parser has a usable labeler.
func (p *Parser) Ready() bool {
	return p.labeler != nil
}

// Parse tokenizes an address string, runs the sequence labeler, and returns
// the ordered (token, label) pairs. An empty or unparseable string returns
// an empty sequence and no error.
func (p *Parser) Parse(address string) ([]TaggedToken, error) {
	tokens := Tokenize(address)
	if len(tokens) == 0 {
		return nil, nil
	}

	if p.labeler == nil {
		return nil, ErrModelNotAvailable
	}

	labels, err := p.labeler.Predict(BuildFeatureSequence(tokens))
	if err != nil {
		return nil, err
	}
	if len(labels) != len(tokens) {
		return nil, fmt.Errorf("labeler returned %d labels for %d tokens", len(labels), len(tokens))
	}

	tagged := make([]TaggedToken, len(tokens))
	for i, token := range tokens {
		tagged[i] = TaggedToken{Token: token, Label: labels[i]}
	}
	return tagged, nil
}

// Tag parses an address string and reassembles contiguous label runs into
// whitespace-joined components, returning them in first-occurrence order
// together with the derived address type. Street name labels occurring after
// an intersection separator are rewritten to their "Second" variant, so both
// legs of an intersection keep distinct keys.
//
// remap, when non-nil, substitutes component labels before runs are grouped;
// labels absent from the map pass through unchanged. Two labels remapped to
// the same name are treated as one label, including for the contiguity rule.
//
// A label whose tokens do not form a single contiguous run makes Tag fail
// with a *RepeatedLabelError. An empty address yields no components and
// AddressTypeAmbiguous.
func (p *Parser) Tag(address string, remap map[string]string) ([]TaggedComponent, string, error) {
	parsed, err := p.Parse(address)
	if err != nil {
		return nil, "", err
	}

	var (
		runs  []labelRun
		index = make(map[string]int)

		lastLabel        string
		haveLast         bool
		isIntersection   bool
		hasAddressNumber bool
		hasBoxID         bool
	)

	for _, pair := range parsed {
		label := pair.Label
		if label == intersectionSeparator {
			isIntersection = true
		}
		if isIntersection && strings.Contains(label, "StreetName") {
			label = "Second " + label
		}

		// Address type derives from the labels before any caller remapping.
		switch label {
		case "AddressNumber":
			hasAddressNumber = true
		case "USPSBoxID":
			hasBoxID = true
		}

		if remap != nil {
			if mapped, ok := remap[label]; ok {
				label = mapped
			}
		}

		switch {
		case haveLast && label == lastLabel:
			run := &runs[index[label]]
			run.tokens = append(run.tokens, pair.Token)
		default:
			if _, seen := index[label]; seen {
				return nil, "", &RepeatedLabelError{Input: address, Parsed: parsed, Label: label}
			}
			index[label] = len(runs)
			runs = append(runs, labelRun{label: label, tokens: []string{pair.Token}})
		}

		lastLabel = label
		haveLast = true
	}

	components := make([]TaggedComponent, len(runs))
	for i, run := range runs {
		value := strings.TrimSpace(strings.Join(run.tokens, " "))
		value = strings.Trim(value, ",;")
		components[i] = TaggedComponent{Label: run.label, Value: value}
	}

	return components, addressType(hasAddressNumber, hasBoxID, isIntersection), nil
}

type labelRun struct {
	label  string
	tokens []string
}

func addressType(hasAddressNumber, hasBoxID, isIntersection bool) string {
	switch {
	case hasAddressNumber && !isIntersection:
		return AddressTypeStreet
	case isIntersection && !hasAddressNumber:
		return AddressTypeIntersection
	case hasBoxID:
		return AddressTypePOBox
	default:
		return AddressTypeAmbiguous
	}
}

// crfLabeler adapts a crf.Model to the Labeler interface by flattening each
// feature set into the model's feature strings.
type crfLabeler struct {
	model *crf.Model
}

func (l *crfLabeler) Predict(sequence []FeatureSet) ([]string, error) {
	flattened := make([][]string, len(sequence))
	for i, features := range sequence {
		flattened[i] = flattenFeatureSet(features)
	}
	return l.model.Decode(flattened), nil
}
