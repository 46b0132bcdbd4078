// File: utils/constants.go
package utils

import "time"

// TaxCachePrefix is the prefix used for Redis tax-rate cache keys.
const TaxCachePrefix = "taxrate:"

// QuoteCachePrefix is the prefix used for Redis quote cache keys.
const QuoteCachePrefix = "quote:"

// QuoteCacheTTL is the fallback time-to-live for quote cache entries.
const QuoteCacheTTL = 5 * time.Minute
