package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	agents "github.com/ADimoska/SOMASHousing/agents"
	observer "github.com/ADimoska/SOMASHousing/observer"
	envServer "github.com/ADimoska/SOMASHousing/server"
)

func main() {
	serverConfig := envServer.DefaultConfig()
	observerConfig := observer.DefaultConfig()

	flag.IntVar(&serverConfig.NumHouseholds, "households", serverConfig.NumHouseholds, "number of households")
	flag.IntVar(&serverConfig.Iterations, "iterations", serverConfig.Iterations, "iterations to run")
	flag.IntVar(&serverConfig.TurnsPerIteration, "turns", serverConfig.TurnsPerIteration, "months per iteration")
	flag.Uint64Var(&serverConfig.Seed, "seed", serverConfig.Seed, "random seed")
	flag.IntVar(&observerConfig.CohortSize, "cohort", observerConfig.CohortSize, "households per plotted cohort")
	flag.Float64Var(&observerConfig.StatsDecay, "decay", observerConfig.StatsDecay, "per month decay of mortgage statistics, in [0, 1)")
	flag.BoolVar(&observerConfig.Verbose, "verbose", observerConfig.Verbose, "log every tick")
	flag.BoolVar(&serverConfig.LogAgents, "log-agents", serverConfig.LogAgents, "log every household at the end of each iteration")
	flag.Parse()

	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Fatalf("Failed to create logs directory: %v", err)
	}

	// Create log file with timestamp in name
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFile, err := os.OpenFile("logs/log_"+timestamp+".log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	// Create a MultiWriter to write to both the log file and stdout
	multiWriter := io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(multiWriter)

	// Remove date and time prefix from log entries
	log.SetFlags(0)

	log.Println("main function started.")

	// agent configuration
	agentConfig := agents.AgentConfig{
		InitBankBalance: 2,    // months of income
		SavingsRate:     0.15, // of monthly income
		VerboseLevel:    0,
	}

	serv := envServer.MakeEnvServer(serverConfig, agentConfig, observerConfig)
	if err := serv.Run(); err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	serv.LogTenureStatus()

	// summarise recorded data
	serv.Observer.Recorder().PlaybackSummary()
	for _, h := range serv.Observer.Histograms() {
		log.Printf("%v: mass %.2f, %v clamped\n", h.Name(), h.TotalMass(), h.Clamped())
	}
	for _, name := range []string{observer.Homeless, observer.Renting} {
		buf, _ := serv.Observer.CohortBuffer(name)
		log.Printf("%v by income cohort: %.2f\n", name, buf.Y)
	}
}
