package npyi

import (
	"encoding/json"
	"testing"
)

const samplePayload = `{
  "result_count": 2,
  "results": [
    {
      "number": 1417367343,
      "enumeration_type": "NPI-1",
      "basic": {"first_name": "KATHLEEN", "last_name": "VOSS", "credential": "MD"},
      "addresses": [
        {"address_purpose": "MAILING", "address_1": "PO BOX 7", "city": "BALTIMORE", "state": "MD", "postal_code": "21201", "country_code": "US"},
        {"address_purpose": "LOCATION", "address_1": "12 OAK ST", "city": "BALTIMORE", "state": "MD", "postal_code": "212011234", "country_code": "US"}
      ],
      "taxonomies": [
        {"desc": "Pediatrics", "primary": false},
        {"desc": "Family Medicine", "primary": true}
      ]
    },
    {
      "number": "1900000000",
      "enumeration_type": "NPI-2",
      "basic": {"organization_name": "MERCY CLINIC"},
      "addresses": [],
      "taxonomies": [{"desc": "Clinic/Center", "primary": false}]
    }
  ]
}`

func decodeSample(t *testing.T) Response {
	t.Helper()
	var r Response
	if err := json.Unmarshal([]byte(samplePayload), &r); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestResponseAccessors(t *testing.T) {
	r := decodeSample(t)
	if r.ResultCount() != 2 {
		t.Errorf("ResultCount() = %d, want 2", r.ResultCount())
	}
	if len(r.Results()) != 2 {
		t.Errorf("len(Results()) = %d, want 2", len(r.Results()))
	}

	var empty Response
	if empty.ResultCount() != 0 || empty.Results() != nil {
		t.Error("accessors on empty Response should return zero values")
	}
	if (Response{"result_count": json.Number("7")}).ResultCount() != 7 {
		t.Error("json.Number result_count not read")
	}
}

func TestResponseProviders(t *testing.T) {
	providers, err := decodeSample(t).Providers()
	if err != nil {
		t.Fatalf("Providers() error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("len = %d, want 2", len(providers))
	}

	ind, org := providers[0], providers[1]
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"individual number", ind.Number.String(), "1417367343"},
		{"string number", org.Number.String(), "1900000000"},
		{"individual name", ind.Name(), "KATHLEEN VOSS"},
		{"organization name", org.Name(), "MERCY CLINIC"},
		{"primary taxonomy", ind.PrimaryTaxonomy(), "Family Medicine"},
		{"fallback taxonomy", org.PrimaryTaxonomy(), "Clinic/Center"},
		{"credential", ind.Basic.Credential, "MD"},
		{"location", ind.Location().Address1, "12 OAK ST"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	if org.Location() != nil {
		t.Error("Location() should be nil without addresses")
	}
	if (Provider{}).PrimaryTaxonomy() != "" {
		t.Error("PrimaryTaxonomy() should be empty without taxonomies")
	}
}

func TestResponseDecode(t *testing.T) {
	var page struct {
		ResultCount int `json:"result_count"`
		Results     []struct {
			EnumerationType string `json:"enumeration_type"`
		} `json:"results"`
	}
	if err := decodeSample(t).Decode(&page); err != nil {
		t.Fatal(err)
	}
	if page.ResultCount != 2 || page.Results[1].EnumerationType != "NPI-2" {
		t.Errorf("Decode() = %+v", page)
	}
}
