package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	ucf "github.com/davidwtbuxton/ucflib"
	"github.com/spf13/cobra"
)

var (
	packOut       string
	packMimetype  string
	packRootfiles []string
)

var packCmd = &cobra.Command{
	Use:   "pack <dir>",
	Short: "Build a UCF archive from a directory tree",
	Long: `Pack walks the directory and stores every regular file as an archive
member, using slash-separated paths relative to the directory. A file named
mimetype at the top level sets the package media type (the --mimetype flag
wins over it). Rootfiles are given as path or path:media-type.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		pkg := ucf.New()

		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			name := filepath.ToSlash(rel)
			data, err := os.ReadFile(p)
			if err != nil {
				return err
			}
			if name == ucf.MimetypeName {
				return pkg.SetMimetype(string(data))
			}
			log.Debug("adding", "member", name, "bytes", len(data))
			return pkg.Set(name, data)
		})
		if err != nil {
			return err
		}

		if packMimetype != "" {
			if err := pkg.SetMimetype(packMimetype); err != nil {
				return err
			}
		}
		for _, spec := range packRootfiles {
			// ':' is illegal in member names, so the first one separates
			// the path from the media type.
			path, mt, _ := strings.Cut(spec, ":")
			if path == "" {
				return fmt.Errorf("empty rootfile path in %q", spec)
			}
			pkg.Rootfiles = append(pkg.Rootfiles, ucf.Rootfile{FullPath: path, MediaType: mt})
		}

		if err := pkg.SaveFile(packOut); err != nil {
			return err
		}
		log.Info("packed archive", "members", pkg.Len(), "out", packOut)
		return nil
	},
}

func init() {
	packCmd.Flags().StringVarP(&packOut, "out", "o", "", "output archive path (required)")
	packCmd.Flags().StringVar(&packMimetype, "mimetype", "", "package media type")
	packCmd.Flags().StringArrayVar(&packRootfiles, "rootfile", nil, "rootfile entry, path[:media-type] (repeatable)")
	_ = packCmd.MarkFlagRequired("out")
}
