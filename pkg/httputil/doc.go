// Package httputil provides the retry loop and JSON transport shared by the
// completion providers.
//
// # Retry
//
// [Retry] runs an operation up to a fixed number of attempts, waiting
// attempt*delay between attempts (linear backoff). Waits select on the
// context, so cancellation ends the loop immediately:
//
//	err := httputil.Retry(ctx, 3, time.Second, func(attempt int) error {
//	    return call()
//	})
//
// Every error is retried unless it is wrapped with [Permanent].
//
// # JSON Requests
//
// [PostJSON] encodes a request body, checks the response status, and decodes
// the response. Non-2xx responses are returned as [*StatusError] carrying a
// truncated copy of the body.
package httputil
