package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the columns of the loaded data",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix()
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"#", "Name", "Type", "Length"})
		table.SetAutoFormatHeaders(false)
		for i, c := range m.Columns() {
			table.Append([]string{strconv.Itoa(i), c.Name, c.Column.Type().Name(), strconv.Itoa(c.Column.Len())})
		}
		table.Render()
		return nil
	},
}
