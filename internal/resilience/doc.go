// Package resilience groups the fault tolerance helpers used around the database.
//
//   - circuitbreaker wraps the *sql.DB used by the tutorial repositories so a
//     failing database is short-circuited instead of piling up requests.
//   - retry reconnects with exponential backoff while the database starts up.
//
// Usage Example:
//
//	breaker := circuitbreaker.NewDBCircuitBreaker(db)
//	repo := postgres.NewTutorialRepo(breaker)
//
//	err := retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
