package httpapi

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter mounts the storefront API. When staticDir is set, non-API paths
// serve the built frontend and fall back to its index.html.
func NewRouter(handler *Handler, staticDir string) http.Handler {
	r := mux.NewRouter()
	r.Use(logRequests)
	handler.RegisterRoutes(r)

	r.PathPrefix("/api/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[storefront] Unmatched API route: %s", r.URL.Path)
		http.Error(w, "API route not found", http.StatusNotFound)
	})
	if staticDir != "" {
		r.PathPrefix("/").Handler(frontend(staticDir))
	}

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(r)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("ROUTE: %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func frontend(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Storefront starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
