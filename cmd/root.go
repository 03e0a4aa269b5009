package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/genericlastname/crosspub/internal/config"
)

var cfgFile string
var verbose bool
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "crosspub",
	Short: "crosspub - publish your writing to the web and Gemini at once",
	Long: `crosspub takes Gemtext posts and topics with TOML frontmatter and
renders them twice: once as an HTML site and once as a Gemini capsule,
through the same minimal template language.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" {
			// init runs before a config file exists
			return nil
		}
		return initializeConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./crosspub.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report every file written")
}

func initializeConfig() error {
	v := viper.New()

	v.SetDefault("site.name", "A crosspub site")
	v.SetDefault("site.html_root", "public_html")
	v.SetDefault("site.gemini_root", "public_gemini")
	v.SetDefault("site.posts_dir", "posts")
	v.SetDefault("site.topics_dir", "topics")
	v.SetDefault("homepage.about_path", "about.gmi")
	v.SetDefault("homepage.atom_feed", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("crosspub")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("CROSSPUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			fmt.Println("No crosspub.toml found in current directory, using defaults. Run 'crosspub init' to create one.")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}
