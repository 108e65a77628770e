// Package logging builds the process logger and carries request-scoped
// loggers through context.
//
// The HTTP logging middleware stores a logger tagged with the request ID;
// handlers and the error responder read it back with FromContext:
//
//	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
//	slog.SetDefault(logger)
//
//	func (h DeleteAllHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//	    logging.FromContext(r.Context()).Info("all tutorials deleted", slog.Int64("deleted", n))
//	}
//
// FromContext falls back to slog.Default when no logger was stored.
package logging
