// Package npyi is a client for the CMS NPPES NPI Registry API.
//
// The National Provider Identifier (NPI) is the unique identification number
// of US health care providers. The registry's lookup API takes a handful of
// search criteria and returns matching providers as JSON.
//
// # Quick Start
//
//	resp, err := npyi.Search(ctx, npyi.SearchParams{"number": "1417367343"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.ResultCount())
//
// # Validation
//
// Search checks its input before touching the network. Parameter keys must
// be one of [ValidSearchParams]; the version must be one of [ValidVersions];
// use_first_name_alias accepts a bool or "true"/"false" in any case;
// address_purpose accepts [ValidAddressPurposes] in any case. Each check is
// also exported as a Clean/Validate pair so it can be used on its own.
//
// # Errors
//
// Every error npyi raises is an [errors.Error] with a code identifying the
// kind of failure. An Errors payload from the registry becomes
// [errors.ErrCodeRegistry] with the registry's first description as message.
//
// # Deprecations
//
// API versions 1.0 and 2.0 are accepted but deprecated. Searches using them
// succeed and emit a [Deprecation] through [WithWarningHandler], the client
// logger and the observability hooks.
//
// [errors.Error]: github.com/andyh1203/npyi/pkg/errors.Error
// [errors.ErrCodeRegistry]: github.com/andyh1203/npyi/pkg/errors.ErrCodeRegistry
package npyi
