package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/gamstats"
	"github.com/carbocation/gamstats/compaction"
	_ "github.com/carbocation/gamstats/compileinfoprint"
)

func main() {
	var segregationFile, outputFile string
	var noBlanks bool

	flag.StringVar(&segregationFile, "segregation_file", "", "Segregation table (windows x nuclear profiles). May be compressed or a gs:// path.")
	flag.StringVar(&outputFile, "output_file", "", "Where to write the compaction of each window. Defaults to stdout.")
	flag.BoolVar(&noBlanks, "no_blanks", false, "Omit windows with missing or zero compaction.")
	flag.Parse()

	if segregationFile == "" {
		log.Println("compaction")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(segregationFile, outputFile, noBlanks); err != nil {
		log.Fatalln(err)
	}
}

func run(segregationFile, outputFile string, noBlanks bool) error {
	var client *storage.Client
	if strings.HasPrefix(segregationFile, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			return err
		}
		defer client.Close()
	}

	seg, err := gamstats.OpenSegregation(segregationFile, client)
	if err != nil {
		return err
	}
	log.Println("Loaded", len(seg.Windows), "windows across", len(seg.Samples), "samples from", segregationFile)

	series := compaction.Get(seg, noBlanks)

	if summary, err := compaction.Summarize(series); err == nil {
		log.Println(summary)
	} else {
		log.Println("No window had any observations")
	}

	if outputFile == "" {
		return compaction.WriteTSV(os.Stdout, series)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	if err := compaction.WriteTSV(f, series); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
