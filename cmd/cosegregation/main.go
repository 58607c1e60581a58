package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	_ "github.com/carbocation/gamstats/compileinfoprint"
	"github.com/carbocation/gamstats/contingency"
)

func main() {
	var tables, sqlitePath string
	var delimChar rune = '\t'

	flag.StringVar(&tables, "tables", "", "File of contingency tables, one per line: an ID followed by the 2^n counts in row-major order.")
	flag.StringVar(&sqlitePath, "sqlite", "", "Optional. Also write the statistics to the 'cosegregation' table of this SQLite database.")
	flag.Func("delim", "Column delimiter. (Default: tab)", func(v string) error {
		if len(v) < 1 {
			return nil
		}

		delimChar = rune(v[0])

		return nil
	})
	flag.Parse()

	if tables == "" {
		log.Println("cosegregation")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(tables, sqlitePath, delimChar); err != nil {
		log.Fatalln(err)
	}
}

func run(tables, sqlitePath string, delim rune) error {
	r, closer, err := openWithDelim(tables, delim)
	if err != nil {
		return err
	}
	defer closer()

	var db Sink = discardSink{}
	if sqlitePath != "" {
		db, err = OpenSink(sqlitePath)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintln(w, strings.Join(header, "\t"))

	records := make([]Record, 0)
	unavailable := 0
	for {
		line, err := r.Read()
		if err != nil && err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		id, tab, err := parseTable(line)
		if err != nil {
			return err
		}

		rec := NewRecord(id, contingency.Summarize(tab))
		if !rec.D.Valid {
			unavailable++
		}

		fmt.Fprintln(w, rec.TSV())
		records = append(records, rec)
	}

	log.Println("Computed statistics for", len(records), "tables;", unavailable, "had insufficient data for D")

	if err := db.Insert(records); err != nil {
		return err
	}

	return w.Flush()
}
