/*
Package router wires HTTP routes to handlers using Go 1.22+ method
patterns on the standard library mux.

Every route passes through identity resolution (Bearer token →
models.Identity in the request context) and request logging. Role-gated
routes additionally wrap middleware.RequireUser or RequireAdmin; the
store re-checks roles as well, so an authorization mistake in routing
cannot widen access.

	mux := router.NewRouter(db, cfg)
	http.ListenAndServe(addr, middleware.CORS(mux))
*/
package router
