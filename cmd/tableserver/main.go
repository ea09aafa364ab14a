// Command tableserver is an optional debugging aid: it serves the flat
// tables cmd/buildtables produces over HTTP so a human (or a script in
// another language) can spot-check an evaluation without linking the Go
// runtime evaluator directly. Unlike cmd/buildtables, it is not part of
// the deterministic build contract and is free to take its configuration
// from the environment.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"pokerphe/internal/table"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// tableSet lazily opens and caches every *.phe file under dir by its
// basename without extension (e.g. "bfs5" for tables/bfs5.phe).
type tableSet struct {
	dir    string
	mu     sync.Mutex
	opened map[string]*table.Table
}

func newTableSet(dir string) *tableSet {
	return &tableSet{dir: dir, opened: map[string]*table.Table{}}
}

func (s *tableSet) get(name string) (*table.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.opened[name]; ok {
		return t, nil
	}
	t, err := table.Open(s.dir + "/" + name + ".phe")
	if err != nil {
		return nil, err
	}
	s.opened[name] = t
	return t, nil
}

func parseCards(raw string) ([]uint8, error) {
	fields := strings.Split(raw, ",")
	cards := make([]uint8, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("invalid card index: %q", f)
		}
		cards = append(cards, uint8(n))
	}
	return cards, nil
}

func main() {
	_ = godotenv.Load()

	port := getenv("PORT", "8765")
	tableDir := getenv("TABLE_DIR", "tables")

	tables := newTableSet(tableDir)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	mux.HandleFunc("/eval", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("table")
		if name == "" {
			writeError(w, http.StatusBadRequest, "missing ?table=")
			return
		}
		tbl, err := tables.get(name)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		cards, err := parseCards(r.URL.Query().Get("cards"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer func() {
			if rec := recover(); rec != nil {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("cards walk out of the table's range: %v", rec))
			}
		}()
		score := tbl.Eval(cards...)
		writeJSON(w, http.StatusOK, map[string]any{
			"table":  name,
			"cards":  cards,
			"score":  score,
			"states": tbl.States(),
		})
	})

	log.Printf("tableserver: serving %s on :%s (Ctrl+C to stop)", tableDir, port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
