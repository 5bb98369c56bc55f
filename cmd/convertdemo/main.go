// Command convertdemo is an interactive REPL over the conversion
// orchestrator, wired with an in-memory fake dictionary instead of a real
// lattice converter. It exists to drive the state machine by hand; it is
// not a wire-protocol server.
package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convfake"
	"github.com/nmuraoka/convergo/internal/converter"
	"github.com/nmuraoka/convergo/internal/convmodel"
	"github.com/nmuraoka/convergo/internal/usagestats"
	_ "modernc.org/sqlite"
)

// #region demo-dictionary

func demoDictionary() map[string][]convfake.Entry {
	return map[string][]convfake.Entry{
		"わたし": {
			{Value: "私", Lid: 100, Rid: 100, Cost: 500},
			{Value: "渡し", Lid: 200, Rid: 200, Cost: 900},
		},
		"は": {
			{Value: "は", Lid: 10, Rid: 10, Cost: 100},
		},
		"あ": {
			{Value: "あ", Lid: 10, Rid: 10, Cost: 50},
		},
	}
}

// #endregion

// #region main

func main() {
	dbPath := envOr("CONVERGO_USAGE_DB", "")

	ic := convfake.NewImmutableConverter(demoDictionary())
	predictor := convfake.NewPredictor(demoDictionary())
	rewriter := convfake.NewRewriter()
	posMatcher := convfake.NewPOSMatcher(1, 2, 3)
	suppression := convfake.NewSuppressionDictionary()
	modules := convmodel.NewModules(ic, posMatcher, suppression)

	var sink usagestats.Sink
	if dbPath != "" {
		sqliteSink, err := openSQLiteSink(dbPath)
		if err != nil {
			log.Fatalf("failed to open usage-stats db: %v", err)
		}
		sink = sqliteSink
	}

	conv := converter.New(modules, predictor, rewriter, sink)
	segs := candset.New()

	fmt.Println("convergo conversion demo ready.")
	fmt.Println("Commands: convert <key> | predict <key> | resize <segIdx> <delta> | commit <segIdx> <candIdx> | finish | cancel | reset | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]

		switch cmd {
		case "quit", "exit":
			return
		case "convert":
			if len(fields) < 2 {
				fmt.Println("usage: convert <key>")
				continue
			}
			ok := conv.StartConversionWithKey(segs, fields[1])
			printSegments(segs, ok)
		case "predict":
			if len(fields) < 2 {
				fmt.Println("usage: predict <key>")
				continue
			}
			ok := conv.StartPredictionWithKey(segs, fields[1])
			printSegments(segs, ok)
		case "resize":
			if len(fields) < 3 {
				fmt.Println("usage: resize <segIdx> <delta>")
				continue
			}
			segIdx, _ := strconv.Atoi(fields[1])
			delta, _ := strconv.Atoi(fields[2])
			ok := conv.ResizeSegment(segs, segIdx, delta)
			printSegments(segs, ok)
		case "commit":
			if len(fields) < 3 {
				fmt.Println("usage: commit <segIdx> <candIdx>")
				continue
			}
			segIdx, _ := strconv.Atoi(fields[1])
			candIdx, _ := strconv.Atoi(fields[2])
			ok := conv.CommitSegmentValue(segs, segIdx, candIdx)
			printSegments(segs, ok)
		case "finish":
			ok := conv.FinishConversion(segs)
			printSegments(segs, ok)
		case "cancel":
			conv.CancelConversion(segs)
			printSegments(segs, true)
		case "reset":
			conv.ResetConversion(segs)
			printSegments(segs, true)
		default:
			fmt.Printf("unknown command: %s\n", cmd)
		}
	}
}

func printSegments(segs *candset.Segments, ok bool) {
	fmt.Printf("ok=%v segments=%d (history=%d)\n", ok, segs.SegmentsSize(), segs.HistorySegmentsSize())
	for i := 0; i < segs.SegmentsSize(); i++ {
		seg := segs.Segment(i)
		fmt.Printf("  [%d] %-10s type=%-14s candidates=%v\n", i, seg.Key, seg.Type, candidateValues(seg))
	}
}

func candidateValues(seg *candset.Segment) []string {
	values := make([]string, 0, seg.CandidatesSize())
	for i := 0; i < seg.CandidatesSize(); i++ {
		values = append(values, seg.Candidates[i].Value)
	}
	return values
}

// #endregion

// #region usage-stats

func openSQLiteSink(dbPath string) (usagestats.Sink, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	return usagestats.NewSQLiteSink(db)
}

// #endregion

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion
