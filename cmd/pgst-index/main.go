// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
pgst-index builds an interleaved Bloom filter pre-filter (IBF_IN) from a
pan-genomic referentially-compressed multi-sequence store (RCMS_IN).
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/grailbio/pgst/persist"
	"github.com/grailbio/pgst/pgsterr"
	"github.com/grailbio/pgst/prefilter"
	"github.com/grailbio/pgst/pst"
	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/search"
)

var (
	binSize    = flag.Int("bin-size", 4096, "Reference positions covered by one IBF bin")
	binOverlap = flag.Int("bin-overlap", 64, "Positions of overlap between adjacent bins, to catch matches straddling a bin boundary")
	kmerSize   = flag.Int("kmer-size", 20, "K-mer length used to populate the IBF")
	hashCount  = flag.Int("hash-count", 3, "Number of hash functions per IBF bin")
	ibfBytes   = flag.Int("ibf-bin-bytes", 512, "Target size in bytes of each IBF bin (rounded up to a power of two bits)")
	envelope   = flag.String("envelope", "none", "Compression envelope for both RCMS_IN and IBF_OUT: 'none', 'gzip', or 'bgzf'")
	threads    = flag.Int("threads", 0, "GOMAXPROCS hint for index construction; 0 leaves the runtime default unchanged")
)

func pgstIndexUsage() {
	fmt.Printf("Usage: %s [OPTIONS] RCMS_IN IBF_OUT\n", os.Args[0])
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

func run(rcmsPath, ibfPath string) error {
	env, err := parseEnvelope(*envelope)
	if err != nil {
		return err
	}
	if *threads > 0 {
		runtime.GOMAXPROCS(*threads)
	}

	in, err := os.Open(rcmsPath)
	if err != nil {
		return err
	}
	defer in.Close()
	r, err := persist.ReadRCMS(in, env)
	if err != nil {
		return err
	}

	rooted := rcms.NewRooted(r)
	base := pst.NewBase(rooted)
	tree := search.Pipeline(base, *kmerSize)

	// prefilter.Config.IBFSizeBytes is the whole filter's budget, while
	// --ibf-bin-bytes is per bin, so scale by the bin count Build will use.
	nbins := 1
	if *binSize > 0 && r.Len() > *binSize {
		nbins = (r.Len() + *binSize - 1) / *binSize
	}
	cfg := prefilter.Config{
		BinSize:           *binSize,
		BinOverlap:        *binOverlap,
		KmerSize:          *kmerSize,
		HashFunctionCount: *hashCount,
		IBFSizeBytes:      *ibfBytes * nbins,
	}
	f := prefilter.Build(base, r.Len(), tree, cfg)

	out, err := os.Create(ibfPath)
	if err != nil {
		return err
	}
	if err := persist.WriteIBF(out, env, *binSize, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func main() {
	flag.Usage = pgstIndexUsage
	shutdown := grail.Init()
	defer shutdown()

	allArgs := flag.Args()
	nPositionalArgs := flag.NArg()
	positionalArgs := allArgs[len(allArgs)-nPositionalArgs:]
	if nPositionalArgs != 2 {
		if nPositionalArgs < 2 {
			log.Error.Printf("Missing positional arguments (RCMS_IN and IBF_OUT required); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		} else {
			log.Error.Printf("Too many positional arguments (only RCMS_IN and IBF_OUT expected); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		}
		flag.Usage()
		os.Exit(pgsterr.ExitUsage)
	}

	if err := run(positionalArgs[0], positionalArgs[1]); err != nil {
		log.Error.Printf("%v", err)
		os.Exit(pgsterr.ExitCode(err))
	}
	log.Debug.Printf("exiting")
}
