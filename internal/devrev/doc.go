// Package devrev provides the HTTP client for the DevRev REST API. It
// handles authentication, request/response serialization, endpoint-specific
// response unwrapping, and automatic retry with exponential backoff for
// transient failures.
//
// # Request Execution
//
// All operations funnel through a shared request executor that accepts GET
// and POST only. Failed attempts are retried up to [RetryConfig.MaxRetries]
// additional times, waiting 2^(attempt+1) seconds between attempts (2s, 4s,
// 8s, ...). Once retries are exhausted the failure is classified into a
// structured [*APIError]; the executor never returns a bare transport error.
//
// # Response Unwrapping
//
// Each DevRev endpoint wraps its payload in a known envelope key (for
// example /works.list returns {"works": [...]}). The executor strips the
// envelope and returns the inner payload as raw JSON. Endpoints without a
// known envelope return the parsed body unchanged.
//
// # Error Handling
//
// Sentinel errors are provided for errors.Is checks:
//
//   - [ErrUnauthorized]: invalid or expired token (401).
//   - [ErrForbidden]: missing permission (403).
//   - [ErrNotFound]: resource does not exist (404).
//   - [ErrRateLimited]: rate limit exceeded (429).
//   - [ErrConnection]: the API could not be reached.
//
// # Thread Safety
//
// The [Client] is safe for concurrent use. The token and the cached
// identity are set at construction and never mutated afterward.
package devrev
