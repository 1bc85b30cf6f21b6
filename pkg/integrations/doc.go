// Package integrations provides the HTTP plumbing for registry API clients.
//
// # Overview
//
// Registry-specific clients live in subpackages:
//
//   - [nppes]: CMS NPPES NPI Registry
//
// # Client Pattern
//
// Registry clients embed [Client] and add the endpoint and payload rules:
//
//	client := nppes.NewClient(nppes.Options{BaseURL: nppes.DefaultBaseURL})
//	body, err := client.Query(ctx, query, requestID)
//
// [Client] handles:
//   - Default and per-request headers
//   - Query string assembly
//   - Mapping of HTTP status codes to [ErrNotFound] and [ErrNetwork]
//   - HTTP events for [observability.HTTPHooks]
//
// Every call performs exactly one request. Callers that want a deadline pass
// one through the context or configure the http.Client timeout.
//
// [nppes]: github.com/andyh1203/npyi/pkg/integrations/nppes
// [observability.HTTPHooks]: github.com/andyh1203/npyi/pkg/observability.HTTPHooks
package integrations
