// Package nppes provides the low-level client for the CMS NPPES NPI Registry API.
//
// The registry answers every query with HTTP 200 and one of two JSON shapes:
//
//	{"result_count": 1, "results": [{...}]}
//	{"Errors": [{"description": "No valid search criteria", "field": "generic", "number": "04"}]}
//
// [Client.Query] sends an already validated query, checks the body against
// an envelope JSON Schema and turns an Errors payload into an
// [errors.ErrCodeRegistry] error. Parameter validation lives one layer up,
// in package npyi.
//
// [errors.ErrCodeRegistry]: github.com/andyh1203/npyi/pkg/errors.ErrCodeRegistry
package nppes
