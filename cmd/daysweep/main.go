// daysweep applies the invalid-artifact sweep to a snapshot directory
// without running any collectors. Useful for repairing a directory a killed
// run left behind.
package main

import (
	"flag"
	"fmt"
	"os"

	"daybook/internal/snapshot"
)

func main() {
	dir := flag.String("dir", "", "artifact directory to sweep; {date} is expanded (required)")
	dateFlag := flag.String("date", "", "snapshot date YYYY-MM-DD (default: today KST)")
	minBytes := flag.Int64("min-bytes", 10, "artifacts at or below this size are deleted")
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "error: --dir is required")
		flag.Usage()
		os.Exit(2)
	}

	date := snapshot.Today(nil)
	if *dateFlag != "" {
		var err error
		date, err = snapshot.ParseDate(*dateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
	}

	target := snapshot.ExpandDir(*dir, date)
	res, err := snapshot.Sweep(target, *minBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("%s: removed %d invalid, kept %d valid\n", target, res.Removed, res.Kept)
}
