package redis

import (
	"fmt"

	"github.com/mcoot/kellypool/internal/model"
)

// Key prefix for all table data
const keyPrefix = "kpool"

// tableKey returns the Redis key for a table's game
func tableKey(id model.TableID) string {
	return fmt.Sprintf("%s:table:%s", keyPrefix, id)
}

// tablesIndexKey returns the Redis key for the SET of known table IDs
func tablesIndexKey() string {
	return fmt.Sprintf("%s:idx:tables", keyPrefix)
}
