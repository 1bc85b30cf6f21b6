package npyi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/andyh1203/npyi/pkg/errors"
)

// SearchParams maps search parameter names to values. Keys must be one of
// [ValidSearchParams]; values are strings, bools or numbers depending on the key.
type SearchParams map[string]any

// Search parameter names accepted by the registry.
const (
	ParamNumber              = "number"
	ParamEnumerationType     = "enumeration_type"
	ParamTaxonomyDescription = "taxonomy_description"
	ParamFirstName           = "first_name"
	ParamUseFirstNameAlias   = "use_first_name_alias"
	ParamLastName            = "last_name"
	ParamOrganizationName    = "organization_name"
	ParamAddressPurpose      = "address_purpose"
	ParamCity                = "city"
	ParamState               = "state"
	ParamPostalCode          = "postal_code"
	ParamCountryCode         = "country_code"
)

// NPPES API versions.
const (
	Version10      = "1.0"
	Version20      = "2.0"
	Version21      = "2.1"
	DefaultVersion = Version21
)

// Address purposes accepted by the address_purpose parameter.
const (
	AddressPurposeLocation  = "LOCATION"
	AddressPurposeMailing   = "MAILING"
	AddressPurposePrimary   = "PRIMARY"
	AddressPurposeSecondary = "SECONDARY"
)

var validSearchParams = [...]string{
	ParamNumber,
	ParamEnumerationType,
	ParamTaxonomyDescription,
	ParamFirstName,
	ParamUseFirstNameAlias,
	ParamLastName,
	ParamOrganizationName,
	ParamAddressPurpose,
	ParamCity,
	ParamState,
	ParamPostalCode,
	ParamCountryCode,
}

var validVersions = [...]string{Version10, Version20, Version21}

var validAddressPurposes = [...]string{
	AddressPurposeLocation,
	AddressPurposeMailing,
	AddressPurposePrimary,
	AddressPurposeSecondary,
}

// sunsets holds the announced end-of-life date of each deprecated version.
var sunsets = map[string]string{
	Version10: "2019-06-01",
	Version20: "2019-09-01",
}

// ValidSearchParams returns the accepted search parameter names in
// documentation order.
func ValidSearchParams() []string { return slices.Clone(validSearchParams[:]) }

// ValidVersions returns the accepted API versions.
func ValidVersions() []string { return slices.Clone(validVersions[:]) }

// ValidAddressPurposes returns the accepted address_purpose values.
func ValidAddressPurposes() []string { return slices.Clone(validAddressPurposes[:]) }

// Deprecation is an advisory notice that an accepted API version is
// scheduled for removal. It never causes a search to fail.
type Deprecation struct {
	Version string // Deprecated version, e.g. "1.0"
	Sunset  string // Announced sunset date, YYYY-MM-DD
}

// Message returns the human-readable notice.
func (d Deprecation) Message() string {
	return fmt.Sprintf("Version %s of the NPPES API will be deprecated on %s", d.Version, d.Sunset)
}

// CleanVersion expands the bare major versions "1" and "2" to "1.0" and
// "2.0". Any other value, including one with surrounding whitespace, is
// returned as-is for [ValidateVersion] to judge.
func CleanVersion(version string) string {
	if version == "1" || version == "2" {
		return version + ".0"
	}
	return version
}

// ValidateVersion reports an [errors.ErrCodeInvalidVersion] error if version
// is not one of [ValidVersions]. version should already be cleaned.
func ValidateVersion(version string) error {
	if slices.Contains(validVersions[:], version) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidVersion,
		"%s is not a supported version. Supported versions are: %s",
		version, strings.Join(validVersions[:], ", "))
}

// DeprecationFor returns the deprecation notice for version, if any.
func DeprecationFor(version string) (Deprecation, bool) {
	sunset, ok := sunsets[version]
	if !ok {
		return Deprecation{}, false
	}
	return Deprecation{Version: version, Sunset: sunset}, true
}

// ValidateSearchParams reports an [errors.ErrCodeInvalidParameter] error for
// the first key of params that is not a valid search parameter. Keys are
// checked in sorted order so the reported key is stable.
func ValidateSearchParams(params SearchParams) error {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if !slices.Contains(validSearchParams[:], k) {
			return errors.New(errors.ErrCodeInvalidParameter,
				"%s is not a valid parameter. Valid search params are: %s",
				k, strings.Join(validSearchParams[:], ", "))
		}
	}
	return nil
}

// CleanUseFirstNameAlias converts the strings "true" and "false", in any
// case, to the matching bool. Every other value is returned unchanged.
func CleanUseFirstNameAlias(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return v
}

// ValidateUseFirstNameAlias reports an [errors.ErrCodeInvalidUseFirstNameAlias]
// error unless v is a bool.
func ValidateUseFirstNameAlias(v any) error {
	if _, ok := v.(bool); ok {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidUseFirstNameAlias,
		"%v is not a valid value for the use_first_name_alias param. use_first_name_alias must be a bool", v)
}

// CleanAddressPurpose uppercases string values. Non-strings are returned
// unchanged.
func CleanAddressPurpose(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToUpper(s)
	}
	return v
}

// ValidateAddressPurpose reports an [errors.ErrCodeInvalidAddressPurpose]
// error unless v is one of [ValidAddressPurposes]. v should already be cleaned.
func ValidateAddressPurpose(v any) error {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return errors.ValidateOneOf(errors.ErrCodeInvalidAddressPurpose,
		"the address_purpose param", s, validAddressPurposes[:])
}
