// Package pkg provides the libraries behind npyi, a client for the CMS NPPES
// NPI Registry.
//
// # Overview
//
// The pkg directory is organized by layer:
//
//  1. [npyi] - Public API (validation, normalization, Search, Lookup)
//  2. [integrations] - HTTP plumbing shared by registry clients
//  3. [integrations/nppes] - Raw registry queries and payload envelope checks
//  4. [errors] - Coded errors returned by every layer
//  5. [observability] - Optional hooks for metrics and tracing
//  6. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// A search flows top to bottom:
//
//	caller params + version
//	         ↓
//	    [npyi] (clean, validate, warn on deprecated versions)
//	         ↓
//	    [integrations/nppes] (one GET, schema check, Errors payload)
//	         ↓
//	    [integrations] (transport, headers, HTTP hooks)
//
// # Quick Start
//
//	import "github.com/andyh1203/npyi/pkg/npyi"
//
//	client := npyi.NewClient()
//	resp, err := client.Search(ctx, npyi.SearchParams{
//	    "first_name": "jane",
//	    "state":      "CA",
//	}, npyi.WithLimit(20))
//	if err != nil {
//	    return err
//	}
//	providers, _ := resp.Providers()
//
// [npyi]: github.com/andyh1203/npyi/pkg/npyi
// [integrations]: github.com/andyh1203/npyi/pkg/integrations
// [integrations/nppes]: github.com/andyh1203/npyi/pkg/integrations/nppes
// [errors]: github.com/andyh1203/npyi/pkg/errors
// [observability]: github.com/andyh1203/npyi/pkg/observability
// [buildinfo]: github.com/andyh1203/npyi/pkg/buildinfo
package pkg
