package npyi

import (
	"encoding/json"
	"strings"
)

// Response is the parsed JSON body returned by the registry, unchanged.
// The accessor methods only read it.
type Response map[string]any

// ResultCount returns the result_count field, or 0 if absent.
func (r Response) ResultCount() int {
	switch n := r["result_count"].(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return 0
}

// Results returns the raw results list, or nil if absent.
func (r Response) Results() []any {
	results, _ := r["results"].([]any)
	return results
}

// Decode re-encodes the payload into v, typically a struct pointer.
func (r Response) Decode(v any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Providers decodes the results list into typed records.
func (r Response) Providers() ([]Provider, error) {
	var page struct {
		Results []Provider `json:"results"`
	}
	if err := r.Decode(&page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Provider is one registry record.
//
// Only the commonly used fields are mapped; use [Response.Decode] with a
// custom type for anything else. Number is kept as json.Number because
// older API versions return it as a string and newer ones as a number.
type Provider struct {
	Number          json.Number `json:"number"`
	EnumerationType string      `json:"enumeration_type"` // NPI-1 individual, NPI-2 organization
	Basic           Basic       `json:"basic"`
	Addresses       []Address   `json:"addresses"`
	Taxonomies      []Taxonomy  `json:"taxonomies"`
}

// Basic holds the provider's identifying details.
type Basic struct {
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	MiddleName       string `json:"middle_name,omitempty"`
	Credential       string `json:"credential,omitempty"`
	Gender           string `json:"gender,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	Status           string `json:"status,omitempty"`
	EnumerationDate  string `json:"enumeration_date,omitempty"`
	LastUpdated      string `json:"last_updated,omitempty"`
}

// Address is a location or mailing address.
type Address struct {
	AddressPurpose  string `json:"address_purpose"`
	Address1        string `json:"address_1"`
	Address2        string `json:"address_2,omitempty"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postal_code"`
	CountryCode     string `json:"country_code"`
	TelephoneNumber string `json:"telephone_number,omitempty"`
}

// Taxonomy is a provider specialty.
type Taxonomy struct {
	Code    string `json:"code,omitempty"`
	Desc    string `json:"desc"`
	Primary bool   `json:"primary"`
	State   string `json:"state,omitempty"`
	License string `json:"license,omitempty"`
}

// Name returns the organization name for NPI-2 records and
// "FIRST LAST" for individuals.
func (p Provider) Name() string {
	if p.Basic.OrganizationName != "" {
		return p.Basic.OrganizationName
	}
	return strings.TrimSpace(p.Basic.FirstName + " " + p.Basic.LastName)
}

// PrimaryTaxonomy returns the description of the primary taxonomy, falling
// back to the first one listed.
func (p Provider) PrimaryTaxonomy() string {
	for _, t := range p.Taxonomies {
		if t.Primary {
			return t.Desc
		}
	}
	if len(p.Taxonomies) > 0 {
		return p.Taxonomies[0].Desc
	}
	return ""
}

// Location returns the practice location address, or nil if none is listed.
func (p Provider) Location() *Address {
	for i := range p.Addresses {
		if p.Addresses[i].AddressPurpose == AddressPurposeLocation {
			return &p.Addresses[i]
		}
	}
	return nil
}
