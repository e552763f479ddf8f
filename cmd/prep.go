/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/gpxprep/params"
	"github.com/rotblauer/gpxprep/prep"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var optMinPoints int
var optCrop bool
var optSuffix string
var optDestination string
var optQuiet bool

// prepCmd represents the prep command
var prepCmd = &cobra.Command{
	Use:   "prep [flags] /path/to/file.gpx [more.gpx ...]",
	Short: "Rewrite GPX files into canonical preprocessed copies",
	Long: `

Copies each GPX file, writing a new track around every track segment,
naming each track after the date-time of its first trackpoint, and
dropping segments with minpoints trackpoints or fewer. Empty segments
are ignored, duplicate segments (same first timestamp) are removed,
segments are sorted by time, points within a segment are sorted by time,
and points without an elevation get elevation 0.

This is preprocessing: several steps happen before a file is accepted
into the reference database, and this is the first.

Files are processed one at a time, in the order given. A file either
converts completely or not at all; no partial output is ever written.

Flags:

  --minpoints  Drop segments with this many trackpoints or fewer. (Default is 3.)
  --crop       Also drop the first and last trackpoint of every segment.
               Recording start/stop points are often spurious. Segments are
               still rejected against the minpoints threshold after cropping.
  --suffix     Suffix for the output file name. (Default is "_pp".)
  --destination
               Directory to write processed files to. (Default is beside the input.)
  --quiet      Silence the per-file report.

Examples:

  gpxprep prep 2011-06-05.gpx
  gpxprep prep --crop --minpoints 5 -d ~/gps/preprocessed *.gpx
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := &params.PrepConfig{
			MinPoints: viper.GetInt("minpoints"),
			Crop:      viper.GetBool("crop"),
			Quiet:     viper.GetBool("quiet"),
		}
		if cfg.MinPoints < 0 {
			log.Fatalf("minpoints must be >= 0, got %d", cfg.MinPoints)
		}

		destination := viper.GetString("destination")
		if destination != "" {
			expanded, err := homedir.Expand(destination)
			if err != nil {
				log.Fatalln(err)
			}
			destination = expanded
		}
		suffix := viper.GetString("suffix")

		for _, arg := range args {
			if err := checkFile(arg); err != nil {
				log.Fatalln(err)
			}
		}

		p := prep.New(cfg)
		for _, arg := range args {
			out := outputPath(arg, destination, suffix)
			report, err := p.File(arg, out)
			if err != nil {
				log.Fatalf("%s: %v", arg, err)
			}
			if !cfg.Quiet {
				for _, line := range report.Summary(cfg.MinPoints) {
					fmt.Println(line)
				}
				fmt.Printf("File written to %s\n\n", out)
			}
		}
	},
}

// checkFile rejects missing inputs and non-GPX extensions before any file
// is processed.
func checkFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file %s not found", path)
	}
	if fi.IsDir() {
		return fmt.Errorf("input %s is a directory", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".gpx") {
		return fmt.Errorf("please choose a gpx file as input, got %s", path)
	}
	return nil
}

// outputPath derives the output file path from the input name: base name
// plus suffix plus extension, beside the input unless a destination
// directory is given.
func outputPath(in, destination, suffix string) string {
	dir, file := filepath.Split(in)
	ext := filepath.Ext(file)
	base := strings.TrimSuffix(file, ext)
	name := base + suffix + ext
	if destination != "" {
		return filepath.Join(destination, name)
	}
	return filepath.Join(dir, name)
}

func init() {
	rootCmd.AddCommand(prepCmd)

	prepCmd.Flags().IntVarP(&optMinPoints, "minpoints", "m", params.DefaultPrepConfig.MinPoints,
		"Drop segments with this many trackpoints or fewer")
	prepCmd.Flags().BoolVarP(&optCrop, "crop", "c", false,
		"Crop the first and last trackpoint from every segment")
	prepCmd.Flags().StringVarP(&optSuffix, "suffix", "s", params.DefaultSuffix,
		"Suffix for the output file name")
	prepCmd.Flags().StringVarP(&optDestination, "destination", "d", "",
		"Directory to write processed files to (default: beside the input)")
	prepCmd.Flags().BoolVarP(&optQuiet, "quiet", "q", false,
		"Quiet mode - silence the per-file report")

	viper.BindPFlags(prepCmd.Flags())
}
