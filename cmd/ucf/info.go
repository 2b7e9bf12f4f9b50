package main

import (
	"fmt"

	ucf "github.com/davidwtbuxton/ucflib"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <archive>",
	Short: "Show the mimetype, rootfiles, and members of an archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg, err := ucf.Open(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("mimetype: %s\n", pkg.Mimetype())
		for _, rf := range pkg.Rootfiles {
			if rf.MediaType != "" {
				fmt.Printf("rootfile: %s (%s)\n", rf.FullPath, rf.MediaType)
			} else {
				fmt.Printf("rootfile: %s\n", rf.FullPath)
			}
		}
		for _, name := range pkg.Names() {
			data, _ := pkg.Get(name)
			fmt.Printf("%9d  %s\n", len(data), name)
		}
		return nil
	},
}
