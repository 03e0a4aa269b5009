package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTML tree locally and rebuild on changes",
	Long: `The serve command performs an initial build, then serves the HTML
output root over HTTP while watching the source directories. Any change to a
post, topic, or custom template triggers a full rebuild.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("Performing initial build...")
		if err := runBuild(appConfig); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		go func() {
			var buildTimer *time.Timer
			debounce := 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
						event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						log.Printf("Change detected: %s (%s)", event.Name, event.Op)
						if buildTimer != nil {
							buildTimer.Stop()
						}
						buildTimer = time.AfterFunc(debounce, func() {
							log.Println("Rebuilding site...")
							if err := runBuild(appConfig); err != nil {
								log.Printf("Rebuild failed: %v", err)
							}
						})
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("Watcher error: %v", err)
				}
			}
		}()

		pathsToWatch := []string{
			appConfig.Site.PostsDir,
			appConfig.Site.TopicsDir,
			appConfig.Templates.CustomHTMLDir,
			appConfig.Templates.CustomGeminiDir,
		}
		for _, path := range pathsToWatch {
			if path == "" {
				continue
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				continue
			}
			if err := watcher.Add(path); err != nil {
				log.Printf("Failed to watch %s: %v", path, err)
			}
		}

		addr := fmt.Sprintf(":%d", serverPort)
		log.Printf("Serving %s on http://localhost%s", appConfig.Site.HTMLRoot, addr)
		log.Println("Press Ctrl+C to stop.")

		fs := http.FileServer(http.Dir(appConfig.Site.HTMLRoot))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			fs.ServeHTTP(w, r)
		})

		return http.ListenAndServe(addr, nil)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
