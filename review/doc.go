// Package review turns the accumulated memory collection into an
// AI-generated "year in review": a narrative summary, 3-5 keyword themes and
// a conceptual soundtrack suggestion.
//
// The Requester makes exactly one model call per invocation, asks for a
// schema-constrained JSON response and validates the returned shape before
// handing back a Result. Failures split into two kinds: ServiceError when
// the underlying call fails, ResponseFormatError when the response is not
// the expected JSON. There is no retry, no caching and no fabricated
// fallback result.
package review
