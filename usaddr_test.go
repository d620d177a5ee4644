package usaddr

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

// labelerFunc adapts a function to the Labeler interface for tests.
type labelerFunc func(sequence []FeatureSet) ([]string, error)

func (f labelerFunc) Predict(sequence []FeatureSet) ([]string, error) {
	return f(sequence)
}

// fixedLabels returns a labeler that always answers with the given labels.
func fixedLabels(labels ...string) Labeler {
	return labelerFunc(func(sequence []FeatureSet) ([]string, error) {
		return labels, nil
	})
}

func TestParseEmptyInput(t *testing.T) {
	parser := NewParser(nil)

	tagged, err := parser.Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") returned error: %v", err)
	}
	if len(tagged) != 0 {
		t.Errorf("Parse(\"\") = %v, want empty", tagged)
	}
}

func TestParseDegradedParser(t *testing.T) {
	parser := NewParserFromModel(filepath.Join(t.TempDir(), "missing.model"))

	if parser.Ready() {
		t.Fatal("parser with missing model should not be ready")
	}

	_, err := parser.Parse("123 Main St.")
	if !errors.Is(err, ErrModelNotAvailable) {
		t.Errorf("Parse error = %v, want ErrModelNotAvailable", err)
	}

	_, _, err = parser.Tag("123 Main St.", nil)
	if !errors.Is(err, ErrModelNotAvailable) {
		t.Errorf("Tag error = %v, want ErrModelNotAvailable", err)
	}
}

func TestParsePairsTokensWithLabels(t *testing.T) {
	parser := NewParser(fixedLabels("AddressNumber", "StreetName", "StreetNamePostType"))

	tagged, err := parser.Parse("123 Main St.")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := []TaggedToken{
		{Token: "123", Label: "AddressNumber"},
		{Token: "Main", Label: "StreetName"},
		{Token: "St.", Label: "StreetNamePostType"},
	}
	if !reflect.DeepEqual(tagged, want) {
		t.Errorf("Parse = %v, want %v", tagged, want)
	}
}

func TestTagStreetAddress(t *testing.T) {
	parser := NewParser(fixedLabels("AddressNumber", "StreetName", "StreetNamePostType"))

	components, addressType, err := parser.Tag("123 Main St.", nil)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}

	want := []TaggedComponent{
		{Label: "AddressNumber", Value: "123"},
		{Label: "StreetName", Value: "Main"},
		{Label: "StreetNamePostType", Value: "St."},
	}
	if !reflect.DeepEqual(components, want) {
		t.Errorf("components = %v, want %v", components, want)
	}
	if addressType != AddressTypeStreet {
		t.Errorf("address type = %q, want %q", addressType, AddressTypeStreet)
	}
}

func TestTagJoinsContiguousRuns(t *testing.T) {
	parser := NewParser(fixedLabels("StreetName", "StreetName", "StreetNamePostType", "PlaceName"))

	components, _, err := parser.Tag("Martin Luther Blvd Chicago,", nil)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}
	if components[0].Value != "Martin Luther" {
		t.Errorf("joined run = %q, want %q", components[0].Value, "Martin Luther")
	}
}

func TestTagTrimsComponentPunctuation(t *testing.T) {
	parser := NewParser(fixedLabels("PlaceName", "StateName"))

	components, _, err := parser.Tag("Austin, TX", nil)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}
	if components[0].Value != "Austin" {
		t.Errorf("component value = %q, want %q (trailing comma stripped)", components[0].Value, "Austin")
	}
}

func TestTagIntersection(t *testing.T) {
	parser := NewParser(fixedLabels(
		"StreetName", "StreetNamePostType",
		"IntersectionSeparator",
		"StreetName", "StreetNamePostType",
	))

	components, addressType, err := parser.Tag("Main St & 1st Ave", nil)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}

	want := []TaggedComponent{
		{Label: "StreetName", Value: "Main"},
		{Label: "StreetNamePostType", Value: "St"},
		{Label: "IntersectionSeparator", Value: "&"},
		{Label: "Second StreetName", Value: "1st"},
		{Label: "Second StreetNamePostType", Value: "Ave"},
	}
	if !reflect.DeepEqual(components, want) {
		t.Errorf("components = %v, want %v", components, want)
	}
	if addressType != AddressTypeIntersection {
		t.Errorf("address type = %q, want %q", addressType, AddressTypeIntersection)
	}
}

func TestTagIntersectionWithAddressNumberIsAmbiguous(t *testing.T) {
	parser := NewParser(fixedLabels(
		"AddressNumber", "StreetName",
		"IntersectionSeparator",
		"StreetName",
	))

	_, addressType, err := parser.Tag("123 Main & Elm", nil)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}
	if addressType != AddressTypeAmbiguous {
		t.Errorf("address type = %q, want %q", addressType, AddressTypeAmbiguous)
	}
}

func TestTagPOBox(t *testing.T) {
	parser := NewParser(fixedLabels("USPSBoxType", "USPSBoxType", "USPSBoxID"))

	components, addressType, err := parser.Tag("PO Box 123", nil)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}
	if components[0].Value != "PO Box" || components[1].Value != "123" {
		t.Errorf("unexpected components: %v", components)
	}
	if addressType != AddressTypePOBox {
		t.Errorf("address type = %q, want %q", addressType, AddressTypePOBox)
	}
}

func TestTagRepeatedLabelFails(t *testing.T) {
	parser := NewParser(fixedLabels("PlaceName", "StreetName", "PlaceName"))

	_, _, err := parser.Tag("Springfield Main Springfield", nil)

	var repeated *RepeatedLabelError
	if !errors.As(err, &repeated) {
		t.Fatalf("Tag error = %v, want *RepeatedLabelError", err)
	}
	if repeated.Label != "PlaceName" {
		t.Errorf("repeated label = %q, want PlaceName", repeated.Label)
	}
	if repeated.Input != "Springfield Main Springfield" {
		t.Errorf("error input = %q, want original address", repeated.Input)
	}
	if len(repeated.Parsed) != 3 {
		t.Errorf("error carries %d parsed pairs, want 3", len(repeated.Parsed))
	}
}

func TestTagRemap(t *testing.T) {
	parser := NewParser(fixedLabels("AddressNumber", "StreetName"))
	remap := map[string]string{"StreetName": "Street"}

	components, _, err := parser.Tag("123 Main", remap)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}
	if components[1].Label != "Street" {
		t.Errorf("remapped label = %q, want Street", components[1].Label)
	}
	// Labels absent from the mapping pass through unchanged.
	if components[0].Label != "AddressNumber" {
		t.Errorf("unmapped label = %q, want AddressNumber", components[0].Label)
	}
}

func TestTagRemapMergeAdjacentRuns(t *testing.T) {
	// Two different original labels remapped to one name behave as a single
	// label, so adjacent runs merge into one component.
	parser := NewParser(fixedLabels("PlaceName", "StateName"))
	remap := map[string]string{"PlaceName": "Location", "StateName": "Location"}

	components, _, err := parser.Tag("Austin TX", remap)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}
	want := []TaggedComponent{{Label: "Location", Value: "Austin TX"}}
	if !reflect.DeepEqual(components, want) {
		t.Errorf("components = %v, want %v", components, want)
	}
}

func TestTagRemapMergeNonAdjacentRunsFails(t *testing.T) {
	// Remapping happens before the contiguity check, so merging two labels
	// whose runs are separated must fail like any repeated label.
	parser := NewParser(fixedLabels("PlaceName", "StreetName", "StateName"))
	remap := map[string]string{"PlaceName": "Location", "StateName": "Location"}

	_, _, err := parser.Tag("Austin Main TX", remap)

	var repeated *RepeatedLabelError
	if !errors.As(err, &repeated) {
		t.Fatalf("Tag error = %v, want *RepeatedLabelError", err)
	}
	if repeated.Label != "Location" {
		t.Errorf("repeated label = %q, want Location", repeated.Label)
	}
}

func TestTagEmptyInput(t *testing.T) {
	parser := NewParser(nil)

	components, addressType, err := parser.Tag("", nil)
	if err != nil {
		t.Fatalf("Tag(\"\") returned error: %v", err)
	}
	if len(components) != 0 {
		t.Errorf("Tag(\"\") components = %v, want empty", components)
	}
	if addressType != AddressTypeAmbiguous {
		t.Errorf("Tag(\"\") address type = %q, want %q", addressType, AddressTypeAmbiguous)
	}
}

func TestTagAmbiguous(t *testing.T) {
	parser := NewParser(fixedLabels("PlaceName"))

	_, addressType, err := parser.Tag("Springfield", nil)
	if err != nil {
		t.Fatalf("Tag returned error: %v", err)
	}
	if addressType != AddressTypeAmbiguous {
		t.Errorf("address type = %q, want %q", addressType, AddressTypeAmbiguous)
	}
}

func TestLabelsVocabulary(t *testing.T) {
	if len(Labels) != 26 {
		t.Errorf("label vocabulary has %d entries, want 26", len(Labels))
	}

	seen := make(map[string]bool)
	for _, label := range Labels {
		if seen[label] {
			t.Errorf("duplicate label %q", label)
		}
		seen[label] = true
	}
}
