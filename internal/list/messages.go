package list

// FetchCompleted reports an asynchronous DataSource.FetchItems result. The
// generation tag lets the controller discard stale responses from fetches
// that resolved out of order.
type FetchCompleted struct {
	View       string
	Generation uint64
	Items      []Item
	Err        error
}

// MutationCompleted reports a primary-action, secondary, or submit result.
type MutationCompleted struct {
	View  string
	Op    Op
	Label string
	Err   error
}

// BatchResult classifies the keys of a bulk delete: the order-preserving
// prefix that succeeded, the first failure with its reason, and the remainder
// that was never attempted.
type BatchResult struct {
	Succeeded    []string
	FailedKey    string
	FailedReason error
	NotAttempted []string
}

// Failed reports whether the batch stopped early.
func (r BatchResult) Failed() bool { return r.FailedKey != "" }

// BatchCompleted reports a finished bulk delete.
type BatchCompleted struct {
	View   string
	Result BatchResult
}
