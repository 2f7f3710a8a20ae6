// Command nodedemon is a headless front-end for the graph core: it
// loads or creates a session document, runs one algorithm to
// completion, and prints each frame — standing in for the GUI's
// canvas-driven step tracer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/nodedemon/engine"
	"github.com/katalvlaran/nodedemon/nodemetrics"
	"github.com/katalvlaran/nodedemon/session"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("nodedemon", flag.ContinueOnError)
	path := fs.String("doc", "", "path to a .nd document to load (omitted: start with an empty session)")
	algo := fs.String("algo", "bfs", "algorithm to run: bfs, dfs, pre_order, in_order, post_order, dijkstra, a_star, prim, kruskal")
	start := fs.String("start", "", "start node")
	end := fs.String("end", "", "end node (optional, algorithm-dependent)")
	metricsAddr := fs.String("metrics-addr", "", "address to serve Prometheus /metrics on (omitted: metrics are recorded but not served)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	reg := prometheus.NewRegistry()
	recorder := nodemetrics.NewRecorder(reg)

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
		logger.Info("serving metrics", "addr", *metricsAddr)
	}

	sess := session.New(logger, session.WithMetrics(recorder))
	if *path != "" {
		if err := sess.Load(*path); err != nil {
			fmt.Fprintln(os.Stderr, "load:", err)
			return 1
		}
	}

	if *start == "" {
		fmt.Fprintln(os.Stderr, "-start is required")
		return 2
	}

	frames, err := collectFrames(sess, *algo, *start, *end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, f := range frames {
		fmt.Println(f)
	}

	return 0
}

// collectFrames runs the named algorithm to completion and formats
// each emitted frame as a line of text.
func collectFrames(sess *session.Session, algo, start, end string) ([]string, error) {
	var lines []string
	switch algo {
	case "bfs":
		it := sess.BreadthFirst(start, end)
		for {
			f, ok := it.Next()
			if !ok {
				break
			}
			lines = append(lines, fmt.Sprintf("focus=%q processed=%v pending=%v", f.Focus, f.Processed, f.Pending))
		}
	case "dfs":
		it := sess.DepthFirst(start, end)
		for {
			f, ok := it.Next()
			if !ok {
				break
			}
			lines = append(lines, fmt.Sprintf("focus=%q processed=%v pending=%v", f.Focus, f.Processed, f.Pending))
		}
	case "pre_order":
		lines = treeOrderLines(sess.PreOrder(start, end))
	case "in_order":
		lines = treeOrderLines(sess.InOrder(start, end))
	case "post_order":
		lines = treeOrderLines(sess.PostOrder(start, end))
	case "dijkstra":
		it := sess.Dijkstra(start, end)
		for {
			f, ok := it.Next()
			if !ok {
				break
			}
			lines = append(lines, fmt.Sprintf("focus=%q processed=%v path=%v", f.Focus, f.Processed, f.Path))
		}
	case "a_star":
		it := sess.AStar(start, end, engine.ASCIIHeuristic)
		for {
			f, ok := it.Next()
			if !ok {
				break
			}
			lines = append(lines, fmt.Sprintf("focus=%q g=%v path=%v", f.Focus, f.GScore, f.Path))
		}
	case "prim":
		it := sess.PrimsMST(start)
		for {
			f, ok := it.Next()
			if !ok {
				break
			}
			lines = append(lines, fmt.Sprintf("focus=%q edges=%v", f.Focus, f.Edges))
		}
	case "kruskal":
		it := sess.KruskalsMST()
		for {
			f, ok := it.Next()
			if !ok {
				break
			}
			lines = append(lines, fmt.Sprintf("focus_edge=%v edges=%v", f.FocusEdge, f.Edges))
		}
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algo)
	}
	if len(lines) == 0 {
		return nil, errors.New("algorithm produced no frames (unknown start node or unsupported variant)")
	}

	return lines, nil
}

func treeOrderLines(it *engine.TreeOrderIterator) []string {
	var lines []string
	for {
		f, ok := it.Next()
		if !ok {
			break
		}
		lines = append(lines, fmt.Sprintf("focus=%q processed=%v", f.Focus, f.Processed))
	}

	return lines
}
