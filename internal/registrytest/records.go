package registrytest

import (
	"fmt"
	"net/url"
	"strings"
)

// criteriaKeys are the query keys that count as search criteria on their own.
// use_first_name_alias and address_purpose only refine other criteria.
var criteriaKeys = []string{
	"number",
	"enumeration_type",
	"taxonomy_description",
	"first_name",
	"last_name",
	"organization_name",
	"city",
	"state",
	"postal_code",
	"country_code",
}

// Address is one provider address.
type Address struct {
	Purpose     string // LOCATION or MAILING
	Line1       string
	City        string
	State       string
	PostalCode  string
	CountryCode string
}

// Record is one provider in the fake registry.
type Record struct {
	Number           int64
	EnumerationType  string // NPI-1 (individual) or NPI-2 (organization)
	FirstName        string
	LastName         string
	OrganizationName string
	Taxonomy         string
	Addresses        []Address
}

// Matches reports whether the record satisfies every criterion in q.
// Name and city comparisons are case-insensitive and accept a trailing "*"
// wildcard; postal codes match by prefix.
func (r Record) Matches(q url.Values) bool {
	if v := q.Get("number"); v != "" && v != fmt.Sprint(r.Number) {
		return false
	}
	if v := q.Get("enumeration_type"); v != "" && !strings.EqualFold(v, r.EnumerationType) {
		return false
	}
	if v := q.Get("first_name"); v != "" && !matchName(v, r.FirstName) {
		return false
	}
	if v := q.Get("last_name"); v != "" && !matchName(v, r.LastName) {
		return false
	}
	if v := q.Get("organization_name"); v != "" && !matchName(v, r.OrganizationName) {
		return false
	}
	if v := q.Get("taxonomy_description"); v != "" &&
		!strings.Contains(strings.ToLower(r.Taxonomy), strings.ToLower(v)) {
		return false
	}
	return r.matchesAddress(q)
}

func (r Record) matchesAddress(q url.Values) bool {
	city, state := q.Get("city"), q.Get("state")
	postal, country := q.Get("postal_code"), q.Get("country_code")
	purpose := strings.ToUpper(q.Get("address_purpose"))
	if purpose == "PRIMARY" {
		purpose = "LOCATION"
	}
	if city == "" && state == "" && postal == "" && country == "" && purpose == "" {
		return true
	}
	for _, a := range r.Addresses {
		if purpose != "" && a.Purpose != purpose {
			continue
		}
		if city != "" && !matchName(city, a.City) {
			continue
		}
		if state != "" && !strings.EqualFold(state, a.State) {
			continue
		}
		if postal != "" && !strings.HasPrefix(a.PostalCode, postal) {
			continue
		}
		if country != "" && !strings.EqualFold(country, a.CountryCode) {
			continue
		}
		return true
	}
	return false
}

func matchName(pattern, value string) bool {
	pattern, value = strings.ToUpper(pattern), strings.ToUpper(value)
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(value, prefix)
	}
	return pattern == value
}

// Payload renders the record in the registry's JSON result shape.
func (r Record) Payload() map[string]any {
	basic := map[string]any{"status": "A"}
	if r.EnumerationType == "NPI-2" {
		basic["organization_name"] = r.OrganizationName
	} else {
		basic["first_name"] = r.FirstName
		basic["last_name"] = r.LastName
	}

	addresses := make([]map[string]any, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		addresses = append(addresses, map[string]any{
			"address_purpose": a.Purpose,
			"address_1":       a.Line1,
			"city":            a.City,
			"state":           a.State,
			"postal_code":     a.PostalCode,
			"country_code":    a.CountryCode,
		})
	}

	return map[string]any{
		"number":           r.Number,
		"enumeration_type": r.EnumerationType,
		"basic":            basic,
		"addresses":        addresses,
		"taxonomies": []map[string]any{
			{"desc": r.Taxonomy, "primary": true},
		},
	}
}

// KnownNPI is the number of the single provider DefaultRecords guarantees.
const KnownNPI = 1417367343

// DefaultRecords returns the fake's built-in record set:
//   - one individual with number KnownNPI
//   - 250 individuals named JEFFREY, enough to fill the largest page
//   - a handful of organizations
func DefaultRecords() []Record {
	records := []Record{{
		Number:          KnownNPI,
		EnumerationType: "NPI-1",
		FirstName:       "KATHLEEN",
		LastName:        "VOSS",
		Taxonomy:        "Family Medicine",
		Addresses: []Address{
			{Purpose: "LOCATION", Line1: "12 OAK ST", City: "BALTIMORE", State: "MD", PostalCode: "212011234", CountryCode: "US"},
			{Purpose: "MAILING", Line1: "PO BOX 7", City: "BALTIMORE", State: "MD", PostalCode: "21201", CountryCode: "US"},
		},
	}}

	states := []string{"CA", "NY", "TX", "FL", "WA"}
	for i := 0; i < 250; i++ {
		state := states[i%len(states)]
		records = append(records, Record{
			Number:          1000000000 + int64(i)*7,
			EnumerationType: "NPI-1",
			FirstName:       "JEFFREY",
			LastName:        fmt.Sprintf("PROVIDER%03d", i),
			Taxonomy:        "Internal Medicine",
			Addresses: []Address{
				{Purpose: "LOCATION", Line1: fmt.Sprintf("%d MAIN ST", 100+i), City: "SPRINGFIELD", State: state, PostalCode: fmt.Sprintf("%05d", 10000+i), CountryCode: "US"},
				{Purpose: "MAILING", Line1: fmt.Sprintf("%d MAIN ST", 100+i), City: "SPRINGFIELD", State: state, PostalCode: fmt.Sprintf("%05d", 10000+i), CountryCode: "US"},
			},
		})
	}

	for i, name := range []string{"MERCY GENERAL HOSPITAL", "MERCY CLINIC", "HARBOR DENTAL GROUP"} {
		records = append(records, Record{
			Number:           1900000000 + int64(i),
			EnumerationType:  "NPI-2",
			OrganizationName: name,
			Taxonomy:         "General Acute Care Hospital",
			Addresses: []Address{
				{Purpose: "LOCATION", Line1: "1 HEALTH WAY", City: "SACRAMENTO", State: "CA", PostalCode: "95814", CountryCode: "US"},
			},
		})
	}
	return records
}
