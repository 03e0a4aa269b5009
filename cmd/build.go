package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genericlastname/crosspub/internal/config"
	"github.com/genericlastname/crosspub/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the HTML and Gemini trees from your posts and topics",
	Long: `The build command parses every Gemtext source file in the posts and
topics directories, then renders the full site twice: the HTML tree into
site.html_root and the Gemini tree into site.gemini_root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(appConfig)
	},
}

func runBuild(cfg config.Config) error {
	s, err := site.Load(cfg)
	if err != nil {
		return err
	}
	s.Verbose = verbose

	if verbose {
		fmt.Printf("Loaded %d posts and %d topics\n", len(s.Posts), len(s.Topics))
	}
	if err := s.Generate(); err != nil {
		return err
	}

	fmt.Println("Finished")
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
