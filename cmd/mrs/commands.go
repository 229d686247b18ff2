package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/murrasil/console/internal/api"
)

func runCounts() {
	fs := flag.NewFlagSet("counts", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	counts := newClient().Counts(context.Background())
	if counts == nil {
		fail("backend unreachable")
	}
	fmt.Printf("new       %d\n", counts.New)
	fmt.Printf("approved  %d\n", counts.Approved)
	fmt.Printf("rejected  %d\n", counts.Rejected)
}

func runList() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", "new", "queue tab: new, approved, rejected")
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	fs.Parse(os.Args[1:])

	resp := newClient().ListNews(context.Background(), api.Status(*status), *page, *limit)
	if resp == nil {
		fail("backend unreachable")
	}
	fmt.Printf("%d items (page %d, total %d)\n\n", len(resp.Data), *page, resp.Total)
	for _, item := range resp.Data {
		fmt.Printf("%-14s %s  [%s / %s]\n", item.ID, item.TitleAr, item.Category, item.SourceName)
	}
}

func runFetch() {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	resp := newClient().TriggerFetch(context.Background())
	if resp == nil {
		fail("backend unreachable")
	}
	if resp.Status != api.StatusSuccess {
		fail("fetch reported %q", resp.Status)
	}
	fmt.Printf("fetch complete, %d new items\n", resp.Fetched)
}

func runSources() {
	fs := flag.NewFlagSet("sources", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	sources := newClient().Sources(context.Background())
	if sources == nil {
		fail("backend unreachable")
	}
	for _, src := range sources {
		mark := " "
		if src.Enabled != 0 {
			mark = "*"
		}
		fmt.Printf("%s %3d  %-30s %s\n", mark, src.ID, src.Name, src.URL)
	}
}

func runHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("n", 50, "max decisions to show")
	fs.Parse(os.Args[1:])

	jour := openJournal()
	defer jour.Close()

	entries, err := jour.Recent(context.Background(), *limit)
	if err != nil {
		fail("cannot read journal: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("no decisions recorded")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  %-8s %-14s %s\n", e.At.Local().Format("2006-01-02 15:04"), e.Action, e.ItemID, e.Title)
	}
}
