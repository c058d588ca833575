// Package eventgen produces synthetic SaaS product-usage events for testing
// and demonstrating the analytics pipeline.
//
// A Generator owns a fixed entity pool of users and documents, a per-user
// session tracker and a single random stream seeded once at construction.
// All draws (event types, platforms, time-of-day, identifiers) come from that
// one stream, so two generators built with the same seed and driven through
// the same calls produce byte-identical event sequences.
//
// Usage:
//
//	generator, _ := eventgen.NewGenerator(42)
//	for event := range generator.ForDay(day, 10_000) {
//		// serialize and load
//	}
package eventgen
