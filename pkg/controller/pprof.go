package controller

import (
	"net/http"
	"net/http/pprof"
)

// DebugMux returns an http.ServeMux with net/http/pprof handlers registered
// under /debug/pprof/. Mount it on the same prefix in the main server.
func DebugMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
