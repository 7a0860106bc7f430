package catalog

import (
	"fmt"
	"net/url"
	"strconv"
)

// Filter holds the recognized optional constraints on a foods query.
// A zero field means no constraint on that dimension.
type Filter struct {
	Category string
	Country  string
	MaxPrice *float64 // inclusive upper bound
}

// ListQuery is a parsed, validated foods listing request: required pagination
// plus the optional filter and sort dimensions.
type ListQuery struct {
	Filter
	Page      int64 // zero-based
	Size      int64
	SortField string
	SortOrder int // 1 asc, -1 desc, 0 no explicit order
}

// ParseFilter reads the optional filter dimensions. Malformed numerics are
// rejected, never coerced.
func ParseFilter(values url.Values) (Filter, error) {
	f := Filter{
		Category: values.Get("category"),
		Country:  values.Get("country"),
	}
	if raw := values.Get("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Filter{}, fmt.Errorf("price: not a number: %q", raw)
		}
		if price < 0 {
			return Filter{}, fmt.Errorf("price: must be non-negative, got %v", price)
		}
		f.MaxPrice = &price
	}
	return f, nil
}

// ParseListQuery validates page/size and the sort pair on top of ParseFilter.
// Sorting applies only when both sortField and sortOrder are supplied; a lone
// half of the pair is ignored.
func ParseListQuery(values url.Values) (ListQuery, error) {
	filter, err := ParseFilter(values)
	if err != nil {
		return ListQuery{}, err
	}
	q := ListQuery{Filter: filter}

	q.Page, err = parseCount(values, "page", 0)
	if err != nil {
		return ListQuery{}, err
	}
	q.Size, err = parseCount(values, "size", 1)
	if err != nil {
		return ListQuery{}, err
	}

	sortField := values.Get("sortField")
	sortOrder := values.Get("sortOrder")
	if sortField != "" && sortOrder != "" {
		q.SortField = sortField
		switch sortOrder {
		case "asc":
			q.SortOrder = 1
		case "desc":
			q.SortOrder = -1
		default:
			return ListQuery{}, fmt.Errorf("sortOrder: want asc or desc, got %q", sortOrder)
		}
	}
	return q, nil
}

func parseCount(values url.Values, key string, min int64) (int64, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("%s: required", key)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not an integer: %q", key, raw)
	}
	if n < min {
		return 0, fmt.Errorf("%s: must be >= %d, got %d", key, min, n)
	}
	return n, nil
}
