package hledgerprices

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Header is the comment line written at the top of every generated journal.
var Header = fmt.Sprintf("; Generated by %s V%s", Name, Version)

// ParsePriceDirective parses one non-comment journal line of the form
// "P <date> <value>", returning the date and the rest of the line.
func ParsePriceDirective(line string) (date, value string, err error) {
	keyword, rest, ok := strings.Cut(line, " ")
	if !ok {
		return "", "", E(KindFormat, fmt.Sprintf("journal line contains no space: %q", line), nil)
	}
	if keyword != "P" {
		return "", "", E(KindFormat, fmt.Sprintf("journal line is not a market price: %q", line), nil)
	}
	date, value, ok = strings.Cut(rest, " ")
	if !ok {
		return "", "", E(KindFormat, fmt.Sprintf("journal line contains only one space: %q", line), nil)
	}
	return date, value, nil
}

// ReadJournal loads an existing journal file into a date to value mapping.
// Comment lines (leading ';' after optional indentation) are skipped; every
// other line must be a price directive. The file must exist.
//
// A date appearing twice in the file keeps the later value.
func ReadJournal(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, E(KindFile, fmt.Sprintf("cannot open journal file %q", path), err)
	}
	defer f.Close()

	entries := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		if strings.HasPrefix(line, ";") {
			continue
		}
		date, value, err := ParsePriceDirective(line)
		if err != nil {
			return nil, err
		}
		entries[date] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, E(KindFile, fmt.Sprintf("error reading journal file %q", path), err)
	}
	return entries, nil
}

// Merge combines the journal's entries with freshly fetched ones. For a date
// present in both, the fetched value replaces the journal's one.
func Merge(journal, fetched map[string]string) map[string]string {
	merged := make(map[string]string, len(journal)+len(fetched))
	for date, value := range journal {
		merged[date] = value
	}
	for date, value := range fetched {
		merged[date] = value
	}
	return merged
}

// WriteJournal rewrites the journal file from scratch: the generated-by
// header, then one price directive per entry, dates descending. Descending
// lexicographic order is chronological order for zero-padded ISO dates.
func WriteJournal(path string, entries map[string]string) error {
	dates := make([]string, 0, len(entries))
	for date := range entries {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	f, err := os.Create(path)
	if err != nil {
		return E(KindFile, fmt.Sprintf("cannot open journal file %q for writing", path), err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, Header)
	for _, date := range dates {
		fmt.Fprintf(w, "P %s %s\n", date, entries[date])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return E(KindFile, fmt.Sprintf("failed writing to journal file %q", path), err)
	}
	if err := f.Close(); err != nil {
		return E(KindFile, fmt.Sprintf("failed writing to journal file %q", path), err)
	}
	return nil
}
