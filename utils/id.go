package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NextID returns the next sequential id for a collection: the given prefix
// plus a zero-padded 3-digit number one past the largest numeric suffix seen.
// An empty collection yields 001. Ids are never reused, so cancelled or
// removed records leave gaps behind rather than freeing their number.
func NextID(prefix string, ids []string) string {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
