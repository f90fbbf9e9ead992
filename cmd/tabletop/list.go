package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tabletop/internal/registry"
	"github.com/vovakirdan/tui-tabletop/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its best score and win/loss record.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional, a missing database leaves them as "-"
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Println("Available games:")
	fmt.Println()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Title", "Best", "Won/Lost")
	for _, g := range games {
		best, record := "-", "-"
		if st, ok := stats[g.ID]; ok {
			if st.HighScore > 0 {
				best = fmt.Sprintf("%d", st.HighScore)
			}
			if st.Wins+st.Losses > 0 {
				record = fmt.Sprintf("%d/%d", st.Wins, st.Losses)
			}
		}
		t.Row(g.ID, g.Title, best, record)
	}
	fmt.Println(t)

	fmt.Println()
	fmt.Println("Run 'tabletop play <id>' to play a game.")
}
