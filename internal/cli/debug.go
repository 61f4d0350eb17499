//spellchecker:words cli
package cli

//spellchecker:words http pprof time github ieograph internal stats gorilla
import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/FAU-CDI/ieograph/internal/stats"
	"github.com/gorilla/mux"
)

// DebugRouter returns a router serving the pprof endpoints.
func DebugRouter() *mux.Router {
	router := mux.NewRouter()
	router.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
	router.Handle("/debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
	router.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	router.Handle("/debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
	router.Handle("/debug/pprof/trace", http.HandlerFunc(pprof.Trace))
	router.Handle("/debug/pprof/{cmd}", http.HandlerFunc(pprof.Index)) // special handling for Gorilla mux
	return router
}

// ListenDebug serves [DebugRouter] on addr.
// It only returns when the server fails, in which case the process exits.
func ListenDebug(addr string, st *stats.Stats) {
	st.Log("debug server listening", "addr", addr)

	server := http.Server{
		Addr:              addr,
		Handler:           DebugRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	err := server.ListenAndServe()

	st.LogFatal("pprof server listen", err)
}
