package cmd

import (
	"github.com/spf13/cobra"
)

var rowIndex int

var rowCmd = &cobra.Command{
	Use:   "row",
	Short: "Print one row of the loaded data as a Name/Value table",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix()
		if err != nil {
			return err
		}
		return m.Row(rowIndex).Render(cmd.OutOrStdout())
	},
}

func init() {
	rowCmd.Flags().IntVar(&rowIndex, "index", 0, "position of the row to print")
}
