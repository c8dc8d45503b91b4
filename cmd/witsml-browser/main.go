// Command witsml-browser connects to a WITSML store and browses its resource
// hierarchy from the terminal: list wells and their children, fetch or delete
// data objects, and inspect channel metadata.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meTur4ik/witsml-studio/browser"
	"github.com/meTur4ik/witsml-studio/client"
	"github.com/meTur4ik/witsml-studio/hierarchy"
	"github.com/meTur4ik/witsml-studio/logx"
	"github.com/meTur4ik/witsml-studio/protocol"
)

var (
	flagURL      string
	flagConfig   string
	flagStore    string
	flagToken    string
	flagUsername string
	flagPassword string
	flagBaseURI  string
	flagTimeout  time.Duration
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:          "witsml-browser",
		Short:        "Browse a WITSML store over its WebSocket discovery protocol",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagURL, "url", "", "store WebSocket endpoint, e.g. wss://store.example.com/etp")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a JSON endpoint configuration file")
	root.PersistentFlags().StringVar(&flagStore, "store", "", "store name within the configuration file")
	root.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token for authentication")
	root.PersistentFlags().StringVar(&flagUsername, "username", "", "username for basic authentication")
	root.PersistentFlags().StringVar(&flagPassword, "password", "", "password for basic authentication")
	root.PersistentFlags().StringVar(&flagBaseURI, "base-uri", browser.DefaultBaseURI, "root URI of the resource hierarchy")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "per-request timeout")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	root.AddCommand(newBrowseCmd(), newGetCmd(), newDeleteCmd(), newChannelsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildClient resolves flags and configuration into a connected client.
func buildClient() (client.Client, string, error) {
	url := flagURL
	baseURI := flagBaseURI
	opts := []client.Option{
		client.WithApplicationName("witsml-browser"),
		client.WithRequestTimeout(flagTimeout),
	}

	logger := logx.NewDefaultLogger()
	if flagVerbose {
		logger.SetLevel(logx.LevelDebug)
	} else {
		logger.SetLevel(logx.LevelWarn)
	}
	opts = append(opts, client.WithLogger(logger))

	if flagConfig != "" {
		cfg, err := client.LoadConfigFromFile(flagConfig)
		if err != nil {
			return nil, "", err
		}
		if flagStore == "" {
			return nil, "", fmt.Errorf("--store is required when using --config")
		}
		store, ok := cfg.Stores[flagStore]
		if !ok {
			return nil, "", fmt.Errorf("store %q not found in %s", flagStore, flagConfig)
		}
		url = store.URL
		if store.BaseURI != "" {
			baseURI = store.BaseURI
		}
		opts = append(opts, store.ClientOptions()...)
	} else {
		switch {
		case flagToken != "":
			opts = append(opts, client.WithAuth(client.NewBearerAuth(flagToken)))
		case flagUsername != "":
			opts = append(opts, client.WithAuth(client.NewBasicAuth(flagUsername, flagPassword)))
		}
	}

	if url == "" {
		return nil, "", fmt.Errorf("no store endpoint: pass --url or --config with --store")
	}
	return client.NewClient(url, opts...), baseURI, nil
}

func newBrowseCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Connect and list the resource hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, baseURI, err := buildClient()
			if err != nil {
				return err
			}

			b := browser.New(c, browser.WithBaseURI(baseURI))
			c.OnSessionOpened(b.OnSessionOpened)
			c.OnSessionClosed(b.OnSessionClosed)

			ctx := cmd.Context()
			if err := c.Connect(ctx); err != nil {
				return err
			}
			defer c.Close()

			fmt.Printf("session %s open, protocols: %v\n\n", c.SessionID(), c.Capabilities().List())

			for _, node := range b.Tree().Roots() {
				if err := printSubtree(ctx, b, node, 0, depth); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 2, "how many hierarchy levels to load")
	return cmd
}

func printSubtree(ctx context.Context, b *browser.Browser, node *hierarchy.Node, indent, depth int) error {
	marker := " "
	if node.Resource().HasChildren {
		marker = "+"
	}
	for i := 0; i < indent; i++ {
		fmt.Print("  ")
	}
	fmt.Printf("%s %s  [%s]\n", marker, node.Name(), node.URI().Raw)

	if depth <= 0 || !node.Resource().HasChildren {
		return nil
	}
	if err := b.Tree().LoadChildren(ctx, node); err != nil {
		return fmt.Errorf("failed to load children of %s: %w", node.URI().Raw, err)
	}
	for _, child := range node.Children() {
		if err := printSubtree(ctx, b, child, indent+1, depth-1); err != nil {
			return err
		}
	}
	return nil
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <uri>",
		Short: "Fetch a data object and print its XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := buildClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := c.Connect(ctx); err != nil {
				return err
			}
			defer c.Close()

			data, err := c.GetObject(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println(data)
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <uri>",
		Short: "Delete a data object from the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete %s without --yes", args[0])
			}
			c, _, err := buildClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := c.Connect(ctx); err != nil {
				return err
			}
			defer c.Close()

			if err := c.DeleteObject(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}

func newChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels <uri>",
		Short: "Describe the channels under a URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := buildClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := c.Connect(ctx); err != nil {
				return err
			}
			defer c.Close()

			if !c.Capabilities().Has(protocol.CapabilityChannelStreaming) {
				return fmt.Errorf("store did not grant the channel streaming protocol")
			}

			records, err := c.DescribeChannels(ctx, args[0])
			if err != nil {
				return err
			}
			for _, rec := range records {
				fmt.Printf("%-12s %-8s %-10s %s\n", rec.Mnemonic, rec.UOM, rec.DataType, rec.ChannelName)
			}
			return nil
		},
	}
}
