package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	clientapi "github.com/aurimasv/vitrina/internal/client/api"
	"github.com/aurimasv/vitrina/internal/view"
)

func (c *Cli) runCalendar(ctx context.Context, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if len(args) > 0 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
		}
		year, month = t.Year(), t.Month()
	}

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	clients, err := c.apiClient.ListClients(ctx, clientapi.ListParams{})
	if err != nil {
		return err
	}

	byDay := view.GroupByDay(view.FlattenJobs(clients))
	cells := view.MonthGrid(year, month)

	fmt.Printf("%s %d\n\n", month, year)
	fmt.Println(" Su  Mo  Tu  We  Th  Fr  Sa")

	for i, cell := range cells {
		if cell.IsZero() {
			fmt.Print("    ")
		} else if len(byDay[view.DayKey(cell)]) > 0 {
			fmt.Printf("%3d*", cell.Day())
		} else {
			fmt.Printf("%3d ", cell.Day())
		}
		if (i+1)%7 == 0 {
			fmt.Println()
		}
	}
	if len(cells)%7 != 0 {
		fmt.Println()
	}

	// list the marked days in order
	var keys []string
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	for key := range byDay {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		fmt.Println("\nNo jobs this month.")
		return nil
	}

	fmt.Println()
	for _, key := range keys {
		fmt.Printf("%s:\n", key)
		for _, j := range byDay[key] {
			fmt.Printf("  • %s  %.2f EUR  %s\n", j.ClientName, j.Price, j.Status)
		}
	}

	return nil
}
