// Command reliability is the CLI front end tying ioformat, order,
// engine, and metrics together. It replaces the reference
// implementation's main.cpp/tdzdd_single.cpp entry points with one Go
// binary supporting both the legacy four-file invocation
// (-graph/-prob/-sources/-order, named flags standing in for main.cpp's
// positional argv[1..4]) and a single self-describing JSON document
// (-network).
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/nttcslab/cs-reliability/core"
	"github.com/nttcslab/cs-reliability/ioformat"
	"github.com/nttcslab/cs-reliability/metrics"
	"github.com/nttcslab/cs-reliability/order"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "reliability: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("reliability", flag.ContinueOnError)
	graphPath := fs.String("graph", "", "legacy graph edge-list file (argv[1] in the reference tool)")
	probPath := fs.String("prob", "", "legacy probability file (argv[2])")
	sourcesPath := fs.String("sources", "", "legacy source-vertex file (argv[3])")
	orderPath := fs.String("order", "", "legacy edge-order file (argv[4])")
	networkPath := fs.String("network", "", "single JSON network document, alternative to the four legacy files")
	autoOrder := fs.String("auto-order", "none", "edge-ordering heuristic when -order is not given: bfs, mst, or none")
	metricsAddr := fs.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :2112) while computing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := loadNetwork(*networkPath, *graphPath, *probPath, *sourcesPath, *orderPath, *autoOrder)
	if err != nil {
		return err
	}

	// A real (exporter-less) SDK TracerProvider, rather than metrics'
	// no-op default, so a span tree actually gets built per run; nothing
	// consumes it yet, but it is the same provider a caller would later
	// wire a real exporter into.
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	cfg := metrics.DefaultConfig()
	cfg.Tracer = tp.Tracer("cs-reliability/cmd/reliability")

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg, cfg)
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: *metricsAddr, Handler: mux}
		go func() {
			// Best-effort: a CLI invocation's metrics endpoint dies with
			// the process either way, so a server error here is reported
			// but does not abort the computation itself.
			if srvErr := srv.ListenAndServe(); srvErr != nil && srvErr != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "reliability: metrics server: %v\n", srvErr)
			}
		}()
		defer srv.Close()
	}

	res, runID, err := collector.Compute(context.Background(), net.N(), net.Edges(), net.Pi(), net.Sources())
	if err != nil {
		return fmt.Errorf("compute (run %s): %w", runID, err)
	}
	fmt.Fprintf(os.Stderr, "run %s: #(states)=%d\n", runID, res.StateCount)

	return ioformat.WriteLevels(os.Stdout, res)
}

func loadNetwork(networkPath, graphPath, probPath, sourcesPath, orderPath, autoOrder string) (*core.Network, error) {
	if networkPath != "" {
		f, err := os.Open(networkPath)
		if err != nil {
			return nil, fmt.Errorf("opening -network: %w", err)
		}
		defer f.Close()
		return ioformat.ReadNetworkJSON(f)
	}

	if graphPath == "" || probPath == "" || sourcesPath == "" {
		return nil, fmt.Errorf("legacy mode requires -graph, -prob, and -sources (or use -network)")
	}

	graphFile, err := os.Open(graphPath)
	if err != nil {
		return nil, fmt.Errorf("opening -graph: %w", err)
	}
	defer graphFile.Close()
	n, edges, err := ioformat.ReadGraphFile(graphFile)
	if err != nil {
		return nil, err
	}

	probFile, err := os.Open(probPath)
	if err != nil {
		return nil, fmt.Errorf("opening -prob: %w", err)
	}
	defer probFile.Close()
	pi, err := ioformat.ReadProbabilityFile(probFile, len(edges))
	if err != nil {
		return nil, err
	}

	sourcesFile, err := os.Open(sourcesPath)
	if err != nil {
		return nil, fmt.Errorf("opening -sources: %w", err)
	}
	defer sourcesFile.Close()
	sources, err := ioformat.ReadSourceFile(sourcesFile)
	if err != nil {
		return nil, err
	}

	edges, pi, err = reorder(edges, pi, sources, n, orderPath, autoOrder)
	if err != nil {
		return nil, err
	}

	return core.NewNetwork(n, edges, pi, sources)
}

// reorder resolves the edge processing order: an explicit -order file
// takes priority, then -auto-order, then the graph file's original
// order is kept unchanged.
func reorder(edges []core.Edge, pi []float64, sources []int, n int, orderPath, autoOrder string) ([]core.Edge, []float64, error) {
	if orderPath != "" {
		f, err := os.Open(orderPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening -order: %w", err)
		}
		defer f.Close()
		perm, err := ioformat.ReadOrderFile(f, edges)
		if err != nil {
			return nil, nil, err
		}
		return order.Apply(perm, edges, pi)
	}

	switch autoOrder {
	case "", "none":
		return edges, pi, nil
	case "bfs":
		perm, err := order.BFSLevelOrder(n, edges, sources)
		if err != nil {
			return nil, nil, err
		}
		return order.Apply(perm, edges, pi)
	case "mst":
		perm, err := order.MSTOrder(n, edges, pi, nil)
		if err != nil {
			return nil, nil, err
		}
		return order.Apply(perm, edges, pi)
	default:
		return nil, nil, fmt.Errorf("unknown -auto-order %q: want bfs, mst, or none", autoOrder)
	}
}
