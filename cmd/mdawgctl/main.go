// main.go
// Copyright (C) 2023 Miðeind ehf.

// Example CLI for exercising the mdawg module: builds a graph from a
// word-list file, freezes it, and either answers a single query or starts
// an HTTP server that answers queries as JSON.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/mideind/mdawg"
)

func loadGraph(path string) *mdawg.FrozenGraph {
	g, err := mdawg.NewGraphFromIterable(mdawg.FileIterable(path))
	if err != nil {
		log.Fatalf("failed to load word list %q: %v", path, err)
	}
	log.Printf("loaded %d words from %q", g.Size(), path)
	return g.Freeze()
}

// queryResponse is the JSON shape returned by the HTTP query handler.
type queryResponse struct {
	Query   string   `json:"query"`
	Mode    string   `json:"mode"`
	Results []string `json:"results,omitempty"`
	Found   bool     `json:"found,omitempty"`
}

func handler(frozen *mdawg.FrozenGraph, authHeader string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		if authHeader != "" && r.Header.Get("Authorization") != authHeader {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		q := r.URL.Query()
		word := q.Get("word")
		resp := queryResponse{Query: word}
		switch mode := q.Get("mode"); mode {
		case "", "contains":
			resp.Mode = "contains"
			resp.Found = frozen.Contains(word)
		case "prefix":
			resp.Mode = "prefix"
			resp.Results = frozen.StringsStartingWith(word)
		case "suffix":
			resp.Mode = "suffix"
			resp.Results = frozen.StringsEndingWith(word)
		case "contains_substr":
			resp.Mode = "contains_substr"
			resp.Results = frozen.StringsContaining(word)
		default:
			http.Error(w, fmt.Sprintf("unknown mode %q", mode), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func main() {
	log.SetOutput(os.Stderr)
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	wordlist := flag.String("wordlist", "", "path to a word list file, one word per line")
	query := flag.String("query", "", "a single word to look up and exit, instead of serving HTTP")
	serve := flag.Bool("serve", false, "start an HTTP query server instead of a one-shot lookup")
	flag.Parse()

	if *wordlist == "" {
		fmt.Fprintln(os.Stderr, "mdawgctl: -wordlist is required")
		os.Exit(1)
	}
	frozen := loadGraph(*wordlist)
	log.Printf("mdawgctl starting, Go version %s, %d words loaded",
		runtime.Version(), frozen.Size())

	if !*serve {
		if *query == "" {
			fmt.Fprintln(os.Stderr, "mdawgctl: one of -query or -serve is required")
			os.Exit(1)
		}
		fmt.Println(frozen.Contains(*query))
		return
	}

	accessKey := os.Getenv("ACCESS_KEY")
	var authHeader string
	if accessKey != "" {
		authHeader = "Bearer " + accessKey
	}
	http.HandleFunc("/query", handler(frozen, authHeader))
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}
