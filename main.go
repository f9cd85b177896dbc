package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
)

const (
	port    = "3000"
	message = "🚀 DevSecOps Pipeline Deployed Successfully on Kubernetes!"
)

func root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, message)
}

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", root).Methods(http.MethodGet, http.MethodHead)
	return r
}

func listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %q: %w", addr, err)
	}
	return ln, nil
}

func run(ln net.Listener, w io.Writer) error {
	p := port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		p = strconv.Itoa(addr.Port)
	}
	fmt.Fprintln(w, "App running on port "+p)

	return http.Serve(ln, newRouter())
}

func main() {
	ln, err := listen(":" + port)
	if err != nil {
		log.Fatalf("Error in Listen: %v", err)
	}

	if err := run(ln, os.Stdout); err != nil {
		log.Fatalf("Error in Serve: %v", err)
	}
}
