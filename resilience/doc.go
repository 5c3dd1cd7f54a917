// Package resilience implements the fault-tolerance policies the transport
// layer applies around HTTP exchanges: retry with exponential backoff,
// circuit breaking, and token-bucket rate limiting.
//
// The rest dispatch layer never retries; whether and how an exchange is
// retried is decided here, under the transport's configuration.
package resilience
