/*
Copyright © 2025 Benny Powers

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// queryCmd runs a gjson path expression against a previously rendered
// JSON report, the same way a caller would grep an XML report with a
// CLI tool -- except structured, since "resolve --format json" output
// is just a gjson-queryable document.
var queryCmd = &cobra.Command{
	Use:   "query [report.json] [path]",
	Short: "Query a resolved JSON report with a gjson path expression",
	Long: `query loads a JSON report produced by "resolve --format json" and
evaluates a gjson path expression against it, e.g.:

  crateapi query report.json 'namespaces.#(path=="widgets").symbols.#.name'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(reportPath, path string) error {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%s is not valid JSON (did you render with --format json?)", reportPath)
	}
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return fmt.Errorf("path %q matched nothing", path)
	}
	fmt.Println(result.String())
	return nil
}
