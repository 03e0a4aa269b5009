package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const sampleConfig = `[site]
name = "My Site"
url = "https://example.com"
username = "you"
html_root = "public_html"
gemini_root = "public_gemini"
posts_dir = "posts"
topics_dir = "topics"

[homepage]
use_about_page = false
about_path = "about.gmi"
post_list = true
atom_feed = true

[templates]
# custom_html_dir = "templates/html"
# custom_gemini_dir = "templates/gemini"
# custom_css_path = "style.css"
`

const samplePost = `---
title = "Hello crosspub"
date = "2024-01-01"
slug = "hello"
---
# Hello

This post is published to both your website and your Gemini capsule.

=> gemini://gemini.circumlunar.space/ Project Gemini
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates the crosspub directory structure and a starter config",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat("crosspub.toml"); err == nil {
			return fmt.Errorf("crosspub.toml already exists, refusing to overwrite")
		}
		if err := os.WriteFile("crosspub.toml", []byte(sampleConfig), 0o644); err != nil {
			return fmt.Errorf("could not write crosspub.toml: %w", err)
		}
		for _, dir := range []string{"posts", "topics"} {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return fmt.Errorf("could not create %s/: %w", dir, err)
			}
		}
		if _, err := os.Stat("posts/hello.gmi"); os.IsNotExist(err) {
			if err := os.WriteFile("posts/hello.gmi", []byte(samplePost), 0o644); err != nil {
				return fmt.Errorf("could not write sample post: %w", err)
			}
		}

		fmt.Println("Initialized crosspub directories and created crosspub.toml.")
		fmt.Println("Blogs/articles go in posts/")
		fmt.Println("Wikis/digital gardens go in topics/")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
