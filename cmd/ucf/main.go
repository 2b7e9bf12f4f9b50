// Command ucf inspects, packs, and unpacks Universal Container Format
// archives (UCF, EPUB/OCF, IDML, and friends).
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ucf",
	Short: "Inspect, pack, and unpack Universal Container Format archives",
	Long: `ucf works with ZIP-based UCF/OCF packages: EPUB books, IDML documents,
and other containers that carry a leading uncompressed mimetype entry and a
META-INF/container.xml manifest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(packCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
