package species

import (
	"encoding/json"
	"testing"
)

func TestText_AcceptsStringsNumbersAndNull(t *testing.T) {
	var f Fish
	raw := `{"name":"Guppy","habitat_temp":"22-28C","habitat_ph":7.2,"min_tank_size_gal":10,"diet":"omnivore"}`
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.HabitatTemp != "22-28C" {
		t.Fatalf("habitat_temp: got %q", f.HabitatTemp)
	}
	if f.HabitatPH != "7.2" {
		t.Fatalf("habitat_ph: got %q", f.HabitatPH)
	}
	if f.MinTankSizeGal != "10" {
		t.Fatalf("min_tank_size_gal: got %q", f.MinTankSizeGal)
	}

	var p Plant
	if err := json.Unmarshal([]byte(`{"name":"Java Fern","co2_needed":null}`), &p); err != nil {
		t.Fatalf("unmarshal plant: %v", err)
	}
	if p.CO2Needed != "" {
		t.Fatalf("co2_needed: expected empty for null, got %q", p.CO2Needed)
	}
	if err := json.Unmarshal([]byte(`{"co2_needed":true}`), &p); err != nil {
		t.Fatalf("unmarshal bool: %v", err)
	}
	if p.CO2Needed != "true" {
		t.Fatalf("co2_needed: got %q", p.CO2Needed)
	}
}

func TestResultType_Kind(t *testing.T) {
	cases := map[ResultType]Kind{
		ResultFish:  KindFish,
		ResultPlant: KindPlant,
	}
	for rt, want := range cases {
		got, ok := rt.Kind()
		if !ok || got != want {
			t.Fatalf("%s: got %q ok=%v", rt, got, ok)
		}
	}
	if _, ok := ResultError.Kind(); ok {
		t.Fatalf("error result must not map to a kind")
	}
	if _, ok := ResultType("general_info").Kind(); ok {
		t.Fatalf("general_info must not map to a kind")
	}
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Status: 500, Message: "Could not load fish list."}
	if got := err.Error(); got != "API Error: 500 - Could not load fish list." {
		t.Fatalf("unexpected message %q", got)
	}
}
