// Package statsweb exposes a running simulation's core.Stats and basic
// process telemetry over HTTP, in the style of the reference simulator's
// monitoring server but trimmed to a read-only stats surface.
package statsweb

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"

	"github.com/sarchlab/vcoresim/core"
)

// StatsSource is anything that can snapshot a core's statistics on demand.
type StatsSource interface {
	Stats() core.Stats
}

// Server is the stats HTTP server. It holds no simulation state itself; it
// queries the registered cores on every request.
type Server struct {
	cores map[string]StatsSource
}

// NewServer creates an empty Server.
func NewServer() *Server {
	return &Server{cores: make(map[string]StatsSource)}
}

// Register makes name's stats available at GET /stats/{name}.
func (s *Server) Register(name string, src StatsSource) {
	s.cores[name] = src
}

// ListenAndServe starts the server on addr and blocks until it exits.
func (s *Server) ListenAndServe(addr string) error {
	r := mux.NewRouter()
	r.HandleFunc("/stats", s.listStats)
	r.HandleFunc("/stats/{name}", s.coreStats)
	r.HandleFunc("/health", s.health)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Serving stats on http://%s\n", listener.Addr())

	return http.Serve(listener, r)
}

type statsRsp struct {
	Cores map[string]core.Stats `json:"cores"`
}

func (s *Server) listStats(w http.ResponseWriter, _ *http.Request) {
	rsp := statsRsp{Cores: make(map[string]core.Stats, len(s.cores))}
	for name, src := range s.cores {
		rsp.Cores[name] = src.Stats()
	}

	writeJSON(w, rsp)
}

func (s *Server) coreStats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	src, ok := s.cores[name]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, src.Stats())
}

type healthRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
	NumCores   int     `json:"num_cores"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Panic(err)
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		log.Panic(err)
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil {
		log.Panic(err)
	}

	writeJSON(w, healthRsp{
		CPUPercent: cpuPercent,
		MemorySize: memInfo.RSS,
		NumCores:   len(s.cores),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	b, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}

	_, err = w.Write(b)
	if err != nil {
		log.Panic(err)
	}
}
