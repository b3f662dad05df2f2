package simulate

import "fmt"

// InsufficientHistoryError means the series cannot support rate
// estimation: fewer than 2 records / 2 distinct years.
type InsufficientHistoryError struct {
	Records int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history: %d record(s), need at least 2 distinct years", e.Records)
}
