package npyi

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"strconv"
)

// Query-only keys added by the client.
const (
	keyVersion = "version"
	keyLimit   = "limit"
	keySkip    = "skip"
)

// BuildQuery validates and normalizes params and assembles the registry
// query for an already cleaned and validated version. limit and skip are
// added only when non-nil.
//
// params is not modified. Keys whose value is nil are dropped from the query.
func BuildQuery(params SearchParams, version string, limit, skip *int) (url.Values, error) {
	if err := ValidateSearchParams(params); err != nil {
		return nil, err
	}

	cleaned := maps.Clone(params)
	if cleaned == nil {
		cleaned = SearchParams{}
	}

	if v, ok := cleaned[ParamUseFirstNameAlias]; ok {
		v = CleanUseFirstNameAlias(v)
		if err := ValidateUseFirstNameAlias(v); err != nil {
			return nil, err
		}
		cleaned[ParamUseFirstNameAlias] = v
	}

	if v, ok := cleaned[ParamAddressPurpose]; ok {
		v = CleanAddressPurpose(v)
		if err := ValidateAddressPurpose(v); err != nil {
			return nil, err
		}
		cleaned[ParamAddressPurpose] = v
	}

	query := url.Values{}
	for k, v := range cleaned {
		if v == nil {
			continue
		}
		query.Set(k, formatValue(v))
	}

	query.Set(keyVersion, version)
	if limit != nil {
		query.Set(keyLimit, strconv.Itoa(*limit))
	}
	if skip != nil {
		query.Set(keySkip, strconv.Itoa(*skip))
	}
	return query, nil
}

// formatValue renders a parameter value the way the registry expects it.
// Bools are capitalized (True/False) and numbers use their shortest form.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
