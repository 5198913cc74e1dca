package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cardiosim",
	Short: "10-year ASCVD risk simulator",
	Long: `cardiosim estimates a person's 10-year risk of atherosclerotic
cardiovascular disease from clinical risk factors, using the 2013 ACC/AHA
Pooled Cohort Equations, and explores how changing modifiable risk factors
shifts that risk over time.

Educational only, not medical advice. The equations are validated for ages
40-79.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
