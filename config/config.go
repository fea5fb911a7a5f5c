// Package config resolves the compile-time constants of the functional-unit
// back-end (§6 of the specification) into a runtime Config value, layering
// defaults, an optional .env file, environment variables, and command-line
// flags the way the reference simulator's own cmd packages layer
// configuration sources.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every configuration constant the back-end needs.
type Config struct {
	IssueWidth   int
	NumLSUBlocks int
	NumLSULanes  int
	XLEN         int

	LatencyIMUL  int
	LatencyFMA   int
	LatencyFDIV  int
	LatencyFSQRT int
	LatencyFCVT  int

	IOBaseAddr  uint64
	IOEndAddr   uint64
	LMEMEnabled bool
	LMEMBaseAddr uint64
	LMEMLogSize  uint

	PendingTableCapacity int

	NumCores  int
	NumCycles uint64
	StatsAddr string
}

// Default returns the scenario configuration used throughout the
// specification's worked examples.
func Default() Config {
	return Config{
		IssueWidth:   2,
		NumLSUBlocks: 1,
		NumLSULanes:  4,
		XLEN:         32,

		LatencyIMUL:  3,
		LatencyFMA:   4,
		LatencyFDIV:  8,
		LatencyFSQRT: 8,
		LatencyFCVT:  2,

		IOBaseAddr:   0xF0000000,
		IOEndAddr:    0xF0010000,
		LMEMEnabled:  true,
		LMEMBaseAddr: 0x00100000,
		LMEMLogSize:  16,

		PendingTableCapacity: 16,

		NumCores:  1,
		NumCycles: 1000,
		StatsAddr: ":7890",
	}
}

// Load resolves a Config starting from Default, optionally overlaying a
// .env-style file at path (a missing file is not an error) and then
// environment variables prefixed VCORESIM_.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	overlayInt(&cfg.IssueWidth, "VCORESIM_ISSUE_WIDTH")
	overlayInt(&cfg.NumLSUBlocks, "VCORESIM_NUM_LSU_BLOCKS")
	overlayInt(&cfg.NumLSULanes, "VCORESIM_NUM_LSU_LANES")
	overlayInt(&cfg.XLEN, "VCORESIM_XLEN")
	overlayInt(&cfg.LatencyIMUL, "VCORESIM_LATENCY_IMUL")
	overlayInt(&cfg.LatencyFMA, "VCORESIM_LATENCY_FMA")
	overlayInt(&cfg.LatencyFDIV, "VCORESIM_LATENCY_FDIV")
	overlayInt(&cfg.LatencyFSQRT, "VCORESIM_LATENCY_FSQRT")
	overlayInt(&cfg.LatencyFCVT, "VCORESIM_LATENCY_FCVT")
	overlayInt(&cfg.PendingTableCapacity, "VCORESIM_PENDING_TABLE_CAPACITY")
	overlayInt(&cfg.NumCores, "VCORESIM_NUM_CORES")
	overlayUint64(&cfg.IOBaseAddr, "VCORESIM_IO_BASE_ADDR")
	overlayUint64(&cfg.IOEndAddr, "VCORESIM_IO_END_ADDR")
	overlayUint64(&cfg.LMEMBaseAddr, "VCORESIM_LMEM_BASE_ADDR")
	overlayUint64(&cfg.NumCycles, "VCORESIM_NUM_CYCLES")
	overlayBool(&cfg.LMEMEnabled, "VCORESIM_LMEM_ENABLED")
	overlayString(&cfg.StatsAddr, "VCORESIM_STATS_ADDR")

	return cfg, nil
}

func overlayInt(dst *int, env string) {
	v, ok := os.LookupEnv(env)
	if !ok {
		return
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return
	}

	*dst = n
}

func overlayUint64(dst *uint64, env string) {
	v, ok := os.LookupEnv(env)
	if !ok {
		return
	}

	n, err := strconv.ParseUint(v, 0, 64)
	if err != nil {
		return
	}

	*dst = n
}

func overlayBool(dst *bool, env string) {
	v, ok := os.LookupEnv(env)
	if !ok {
		return
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return
	}

	*dst = b
}

func overlayString(dst *string, env string) {
	v, ok := os.LookupEnv(env)
	if !ok {
		return
	}

	*dst = v
}
