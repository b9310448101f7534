// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
pgst-search matches query patterns against the haplotypes reachable from a
pan-genomic RCMS, using an IBF to narrow each query to a small set of
candidate bins before running the selected matcher over each candidate.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/grailbio/pgst/external/samsink"
	"github.com/grailbio/pgst/matcher"
	"github.com/grailbio/pgst/persist"
	"github.com/grailbio/pgst/pgsterr"
	"github.com/grailbio/pgst/prefilter"
	"github.com/grailbio/pgst/pst"
	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/search"
)

var (
	matcherName   = flag.String("matcher", "horspool", "Matcher to run on candidate bins: 'horspool', 'shiftor', 'myers', or 'pigeonhole'")
	errorRate     = flag.Int("error-rate", 0, "Number of substitutions/indels a match may contain; 0 requires an exact match")
	threads       = flag.Int("threads", 0, "Worker pool size for the query x bin search; 0 means 1")
	referenceName = flag.String("reference-name", "pgst", "Reference name recorded in HITS_OUT's BAM header and each hit's @SQ/RNAME")
	envelope      = flag.String("envelope", "none", "Compression envelope RCMS_IN and IBF_IN were written with: 'none', 'gzip', or 'bgzf'")
)

func pgstSearchUsage() {
	fmt.Printf("Usage: %s [OPTIONS] RCMS_IN IBF_IN QUERIES_IN HITS_OUT\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func parseEnvelope(s string) (persist.Envelope, error) {
	switch s {
	case "none":
		return persist.EnvelopeNone, nil
	case "gzip":
		return persist.EnvelopeGzip, nil
	case "bgzf":
		return persist.EnvelopeBGZF, nil
	default:
		return 0, fmt.Errorf("unknown envelope %q", s)
	}
}

func matcherFactory(name string) (search.MatcherFactory, error) {
	switch name {
	case "horspool":
		return func(pattern []byte, _ int) (matcher.Matcher, error) {
			return matcher.NewHorspool(pattern)
		}, nil
	case "shiftor":
		return func(pattern []byte, _ int) (matcher.Matcher, error) {
			return matcher.NewShiftOr(pattern)
		}, nil
	case "myers":
		return func(pattern []byte, errorBudget int) (matcher.Matcher, error) {
			return matcher.NewMyers(pattern, errorBudget)
		}, nil
	case "pigeonhole":
		return func(pattern []byte, errorBudget int) (matcher.Matcher, error) {
			return matcher.NewPigeonhole(0, pattern, errorBudget)
		}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", name)
	}
}

// readQueries reads one pattern per line from r, skipping blank lines.
func readQueries(r io.Reader) ([]search.Query, error) {
	var queries []search.Query
	s := bufio.NewScanner(r)
	var id uint32
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		queries = append(queries, search.Query{ID: id, Pattern: []byte(line)})
		id++
	}
	return queries, s.Err()
}

func run(rcmsPath, ibfPath, queriesPath, hitsPath string) error {
	env, err := parseEnvelope(*envelope)
	if err != nil {
		return err
	}
	factory, err := matcherFactory(*matcherName)
	if err != nil {
		return err
	}

	rcmsFile, err := os.Open(rcmsPath)
	if err != nil {
		return err
	}
	defer rcmsFile.Close()
	r, err := persist.ReadRCMS(rcmsFile, env)
	if err != nil {
		return err
	}

	ibfFile, err := os.Open(ibfPath)
	if err != nil {
		return err
	}
	defer ibfFile.Close()
	f, binSize, err := persist.ReadIBF(ibfFile, env)
	if err != nil {
		return err
	}

	queriesFile, err := os.Open(queriesPath)
	if err != nil {
		return err
	}
	defer queriesFile.Close()
	queries, err := readQueries(queriesFile)
	if err != nil {
		return err
	}

	rooted := rcms.NewRooted(r)
	base := pst.NewBase(rooted)
	tree := search.Pipeline(base, f.KmerSize())
	bins := pst.Chunk(tree, base, r.Len(), binSize)

	hitsFile, err := os.Create(hitsPath)
	if err != nil {
		return err
	}
	writerParallelism := *threads
	if writerParallelism <= 0 {
		writerParallelism = 1
	}
	sink, err := samsink.New(hitsFile, *referenceName, r.Len(), writerParallelism)
	if err != nil {
		hitsFile.Close()
		return err
	}

	o := &search.Orchestrator{
		Base:    base,
		Filter:  f,
		Bins:    bins,
		Factory: factory,
		Sink:    sink,
		Options: search.Options{
			ErrorBudget: *errorRate,
			ThreadCount: *threads,
		},
	}
	if err := o.Run(queries); err != nil {
		sink.Close()
		hitsFile.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		hitsFile.Close()
		return err
	}
	return hitsFile.Close()
}

func main() {
	flag.Usage = pgstSearchUsage
	shutdown := grail.Init()
	defer shutdown()

	allArgs := flag.Args()
	nPositionalArgs := flag.NArg()
	positionalArgs := allArgs[len(allArgs)-nPositionalArgs:]
	if nPositionalArgs != 4 {
		if nPositionalArgs < 4 {
			log.Error.Printf("Missing positional arguments (RCMS_IN, IBF_IN, QUERIES_IN, and HITS_OUT required); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		} else {
			log.Error.Printf("Too many positional arguments (only RCMS_IN, IBF_IN, QUERIES_IN, and HITS_OUT expected); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		}
		flag.Usage()
		os.Exit(pgsterr.ExitUsage)
	}

	if err := run(positionalArgs[0], positionalArgs[1], positionalArgs[2], positionalArgs[3]); err != nil {
		log.Error.Printf("%v", err)
		os.Exit(pgsterr.ExitCode(err))
	}
	log.Debug.Printf("exiting")
}
