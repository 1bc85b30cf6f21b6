package integrations_test

import (
	"fmt"
	"net/url"

	"github.com/andyh1203/npyi/pkg/integrations"
)

func ExampleWithQuery() {
	// Query parameters are merged into the base URL
	u, _ := integrations.WithQuery("https://npiregistry.cms.hhs.gov/api/", url.Values{
		"number":  {"1417367343"},
		"version": {"2.1"},
	})
	fmt.Println(u)
	// Output:
	// https://npiregistry.cms.hhs.gov/api/?number=1417367343&version=2.1
}

func Example_errors() {
	// Standard errors for registry transport failures
	fmt.Println("ErrNotFound:", integrations.ErrNotFound)
	fmt.Println("ErrNetwork:", integrations.ErrNetwork)
	// Output:
	// ErrNotFound: resource not found
	// ErrNetwork: network error
}
