// Package server runs an http.Server bound to a context: the server starts
// serving immediately and drains in-flight requests once the context is
// canceled.
//
//	srv, err := server.NewFromConfig("localhost:8080", cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	return srv.Run(ctx, router)
package server
