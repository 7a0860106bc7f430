package redisx

import "time"

const (
	// Cache single food document: food:{id} -> JSON
	KeyFood = "food:%s"

	// Cache whole-collection estimated count: foods:count -> int
	KeyFoodsCount = "foods:count"
)

var (
	TTLFood       = 5 * time.Minute
	TTLFoodsCount = 30 * time.Second
)
