package cmd

import (
	"fmt"

	"github.com/jdlms/tip-calculator/internal/calculator"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCalcCmd())
}

func newCalcCmd() *cobra.Command {
	var (
		bill  string
		tip   int
		split int
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Split a bill without opening the screen",
		Long:  "Apply a bill amount, tip percentage and split count the same way the screen does and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tip < 0 || tip > 100 {
				return fmt.Errorf("--tip must be between 0 and 100, got %d", tip)
			}
			if split < 1 {
				return fmt.Errorf("--split must be at least 1, got %d", split)
			}

			engine := calculator.New()
			engine.SetBillAmount(bill)
			if err := engine.CommitBillAmount(); err != nil {
				return err
			}
			engine.SetTipPercentageFromSlider(float64(tip) / 100)
			engine.CommitSlider()
			for engine.Contributors() < split {
				engine.IncrementContributors()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tip (%d%%): $%.2f\n", engine.TipPercentage(), engine.TipAmount())
			fmt.Fprintf(out, "Split: %d\n", engine.Contributors())
			fmt.Fprintf(out, "Total Per Person: $%.2f\n", engine.TotalPerPerson())
			return nil
		},
	}

	cmd.Flags().StringVar(&bill, "bill", "", "bill amount")
	cmd.Flags().IntVar(&tip, "tip", 0, "tip percentage (0-100)")
	cmd.Flags().IntVar(&split, "split", 1, "number of contributors")
	_ = cmd.MarkFlagRequired("bill")
	return cmd
}
