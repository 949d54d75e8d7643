package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/twophase/internal/kociemba"
	"github.com/spf13/cobra"
)

// kociembaCmd implements the external CLI contract directly against
// internal/kociemba.Solve: a 54-character facelet string in, a solution
// line or an "Error <code>" line out.
var kociembaCmd = &cobra.Command{
	Use:   "kociemba <facelets>",
	Short: "Solve a facelet string with Kociemba's two-phase algorithm",
	Long: `Solve a 54-character facelet string (U R F D L B, 9 of each) directly
against the two-phase engine, bypassing the scramble-based solve command.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		facelets := args[0]
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		timeoutMs, _ := cmd.Flags().GetInt("timeout")
		showPhases, _ := cmd.Flags().GetBool("show-phases")

		sol, err := kociemba.Solve(facelets, maxDepth, time.Duration(timeoutMs)*time.Millisecond, kociemba.Options{
			Separator: showPhases,
		})
		if err != nil {
			if se, ok := err.(*kociemba.SolveError); ok {
				fmt.Printf("Error %d\n", se.Code())
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}
		fmt.Println(sol)
	},
}

func init() {
	kociembaCmd.Flags().Int("max-depth", 24, "Maximum move count the search may return")
	kociembaCmd.Flags().Int("timeout", 10000, "Search time budget in milliseconds")
	kociembaCmd.Flags().Bool("show-phases", false, "Insert a separator between phase-1 and phase-2 moves")
}
