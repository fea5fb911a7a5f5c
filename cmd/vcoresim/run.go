package main

import (
	"fmt"
	"net"
	"os"
	"runtime/pprof"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/vcoresim/arbiter"
	"github.com/sarchlab/vcoresim/config"
	"github.com/sarchlab/vcoresim/core"
	"github.com/sarchlab/vcoresim/memproto"
	"github.com/sarchlab/vcoresim/sim"
	"github.com/sarchlab/vcoresim/statsweb"
	"github.com/sarchlab/vcoresim/tracing"
)

var (
	flagCycles    uint64
	flagConfig    string
	flagTraceJSON bool
	flagSQLite    string
	flagProfile   string
	flagStatsAddr string
	flagOpen      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a fixed number of cycles against stub memory and coprocessors",
	Run:   runRun,
}

func init() {
	runCmd.Flags().Uint64Var(&flagCycles, "cycles", 0, "number of cycles to run (0 uses the config default)")
	runCmd.Flags().StringVar(&flagConfig, "config", "", "path to a .env-style config file")
	runCmd.Flags().BoolVar(&flagTraceJSON, "trace-json", false, "write a JSON trace of every task")
	runCmd.Flags().StringVar(&flagSQLite, "sqlite", "", "write a SQLite trace to this path")
	runCmd.Flags().StringVar(&flagProfile, "profile", "", "write a CPU profile to this path")
	runCmd.Flags().StringVar(&flagStatsAddr, "stats-addr", "", "serve live stats on this address (overrides config)")
	runCmd.Flags().BoolVar(&flagOpen, "open", false, "open the stats page in a browser right after starting the stats server")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	if flagCycles > 0 {
		cfg.NumCycles = flagCycles
	}
	if flagStatsAddr != "" {
		cfg.StatsAddr = flagStatsAddr
	}

	if flagProfile != "" {
		f, err := os.Create(flagProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating profile: %v\n", err)
			os.Exit(1)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "starting profile: %v\n", err)
			os.Exit(1)
		}
		atexit.Register(pprof.StopCPUProfile)
	}

	var tracer tracing.Tracer
	switch {
	case flagTraceJSON:
		tracer = tracing.NewJSONTracer()
	case flagSQLite != "":
		tracer = tracing.NewSQLiteTracer(flagSQLite)
	}

	driver := sim.NewDriver()

	frontend := core.NewSimpleFrontend()
	cores := make([]*core.Core, cfg.NumCores)
	classifier := memproto.NewClassifier(
		cfg.IOBaseAddr, cfg.IOEndAddr, cfg.LMEMEnabled, cfg.LMEMBaseAddr, cfg.LMEMLogSize,
	)

	srv := statsweb.NewServer()

	for ci := 0; ci < cfg.NumCores; ci++ {
		name := fmt.Sprintf("Core%d", ci)
		c := core.NewCore(name, driver, uint32(ci), cfg, frontend)

		if tracer != nil {
			tracing.CollectTrace(c, tracer)
		}

		for _, unit := range c.Units() {
			driver.Register(unit)
		}

		wireMemory(driver, c, cfg, classifier, ci)
		wireCoprocessors(driver, c, cfg, ci)

		cores[ci] = c
		srv.Register(name, c)
	}

	if cfg.StatsAddr != "" {
		go func() {
			if err := srv.ListenAndServe(cfg.StatsAddr); err != nil {
				fmt.Fprintf(os.Stderr, "stats server: %v\n", err)
			}
		}()

		if flagOpen {
			host, port, err := net.SplitHostPort(cfg.StatsAddr)
			if err == nil {
				if host == "" {
					host = "localhost"
				}
				_ = browser.OpenURL("http://" + net.JoinHostPort(host, port) + "/stats")
			}
		}
	}

	driver.Run(cfg.NumCycles)

	for _, c := range cores {
		s := c.Stats()
		fmt.Printf(
			"%s: loads=%d stores=%d load_latency=%d resumes=%d wspawns=%d barriers=%d\n",
			c.Name(), s.Loads, s.Stores, s.LoadLatency, s.ResumeCalls, s.WSpawnCalls, s.BarrierCalls,
		)
	}

	atexit.Exit(0)
}

func wireMemory(
	driver *sim.Driver,
	c *core.Core,
	cfg config.Config,
	classifier memproto.Classifier,
	ci int,
) {
	for bi, bank := range c.LSU.Banks {
		adapterName := fmt.Sprintf("Core%d.LsuMemAdapter%d", ci, bi)
		adapter := arbiter.NewLsuMemAdapter(adapterName, driver, cfg.NumLSULanes, classifier, 1)

		bank.ReqOut.Bind(adapter.ReqIn)
		adapter.RspOut.Bind(bank.RspIn)

		driver.Register(adapter)

		for lane := 0; lane < cfg.NumLSULanes; lane++ {
			memName := fmt.Sprintf("Core%d.Mem%d.%d", ci, bi, lane)
			mem := memproto.NewStubMemory(memName, driver, 1)

			adapter.ReqOut[lane].Bind(mem.Input)
			mem.Output.Bind(adapter.RspIn[lane])

			driver.Register(mem)
		}
	}
}

func wireCoprocessors(driver *sim.Driver, c *core.Core, cfg config.Config, ci int) {
	for i := 0; i < 1; i++ {
		raster := core.NewStubCoprocessor(fmt.Sprintf("Core%d.Raster%d", ci, i), driver, 8)
		tex := core.NewStubCoprocessor(fmt.Sprintf("Core%d.Tex%d", ci, i), driver, 8)
		om := core.NewStubCoprocessor(fmt.Sprintf("Core%d.OM%d", ci, i), driver, 8)

		c.SFU.RasterUnits = append(c.SFU.RasterUnits, raster.Handle())
		c.SFU.TexUnits = append(c.SFU.TexUnits, tex.Handle())
		c.SFU.OMUnits = append(c.SFU.OMUnits, om.Handle())

		c.SFU.CoprocessorOutputs = append(c.SFU.CoprocessorOutputs, raster.Output, tex.Output, om.Output)

		driver.Register(raster)
		driver.Register(tex)
		driver.Register(om)
	}
}
