// Package resilience provides fault tolerance building blocks: circuit
// breakers around database access and retry with exponential backoff for
// transient failures.
//
//	cb := circuitbreaker.NewDBCircuitBreaker(db)
//	repo := postgres.NewSourceRepo(cb)
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return performOperation()
//	})
package resilience
