package cmd

import (
	"fmt"

	"github.com/sdiallo/avicoach/internal/progress"
	"github.com/sdiallo/avicoach/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		state, err := st.ProgressRepo().Load()
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		agg := progress.Compute(state)

		fmt.Printf("Lessons completed:  %d / %d (%d%%)\n",
			agg.LessonsCompleted, agg.TotalLessonsTarget, agg.CompletionRate)
		fmt.Printf("Quizzes taken:      %d\n", agg.PassCount)
		fmt.Printf("Average score:      %d%%\n", agg.AverageScore)

		recent := progress.RecentHistory(state, 5)
		if len(recent) > 0 {
			fmt.Println("\nRecent results:")
			for _, ev := range recent {
				fmt.Printf("  %s  %-18s %3d%%\n",
					ev.Timestamp.Format("2006-01-02 15:04"), ev.Topic, ev.ScorePercent)
			}
		}
		return nil
	},
}
