package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	ucf "github.com/davidwtbuxton/ucflib"
	"github.com/spf13/cobra"
)

var extractDir string

var extractCmd = &cobra.Command{
	Use:   "extract <archive>",
	Short: "Unpack every member of an archive into a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg, err := ucf.Open(args[0])
		if err != nil {
			return err
		}
		for _, name := range pkg.Names() {
			dst, err := safeJoin(extractDir, name)
			if err != nil {
				return err
			}
			if strings.HasSuffix(name, "/") {
				if err := os.MkdirAll(dst, 0o755); err != nil {
					return err
				}
				continue
			}
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return err
			}
			data, _ := pkg.Get(name)
			if err := os.WriteFile(dst, data, 0o644); err != nil {
				return err
			}
			log.Debug("extracted", "member", name, "bytes", len(data))
		}
		log.Info("extracted archive", "members", pkg.Len(), "dir", extractDir)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractDir, "dir", "C", ".", "directory to extract into")
}

// safeJoin joins name under dir, refusing members that would escape it.
func safeJoin(dir, name string) (string, error) {
	dst := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, dst)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("member %q escapes the output directory", name)
	}
	return dst, nil
}
