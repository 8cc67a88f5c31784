// file: cmd/root.go
// version: 1.1.0
// guid: 6f0a4e8c-2d5b-4a9e-b1f3-7c5e9a1d3b6f

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/isbndb/internal/config"
	"github.com/jdfalk/isbndb/isbndb"
)

var apiKey string
var plan string
var page int
var pageSize int
var language string
var withPrices bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "isbndb",
	Short: "Look up book metadata from the ISBNdb API",
	Long: `isbndb queries the ISBNdb REST API for book, author, and publisher
metadata. Requests are throttled to your subscription plan's ceiling
(default: 1/s, premium: 3/s, pro: 5/s) and a throttled response is
retried once after the server's Retry-After delay.

The API key is read from --api-key or the ISBNDB_API_KEY environment
variable.`,
}

// bookCmd represents the book command
var bookCmd = &cobra.Command{
	Use:   "book <isbn>",
	Short: "Look up a single book by ISBN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		book, err := client.GetBook(cmd.Context(), args[0], isbndb.BookOptions{WithPrices: withPrices})
		if err != nil {
			return fmt.Errorf("book lookup failed: %w", err)
		}
		return printJSON(book)
	},
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search books by title, author, or keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		results, err := client.SearchBooks(cmd.Context(), args[0], isbndb.SearchOptions{
			Page:     config.AppConfig.Page,
			PageSize: config.AppConfig.PageSize,
			Language: config.AppConfig.Language,
		})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		fmt.Printf("Found %d books (showing %d)\n", results.Total, len(results.Books))
		return printJSON(results.Books)
	},
}

// authorCmd represents the author command
var authorCmd = &cobra.Command{
	Use:   "author <name>",
	Short: "Look up an author and their books",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		author, err := client.GetAuthor(cmd.Context(), args[0], isbndb.PageOptions{
			Page:     config.AppConfig.Page,
			PageSize: config.AppConfig.PageSize,
		})
		if err != nil {
			return fmt.Errorf("author lookup failed: %w", err)
		}

		fmt.Printf("%s (%d books known)\n", author.Name, author.Total)
		return printJSON(author.Books)
	},
}

// publisherCmd represents the publisher command
var publisherCmd = &cobra.Command{
	Use:   "publisher <name>",
	Short: "Look up a publisher and its book ISBNs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		publisher, err := client.GetPublisher(cmd.Context(), args[0], isbndb.PageOptions{
			Page:     config.AppConfig.Page,
			PageSize: config.AppConfig.PageSize,
		})
		if err != nil {
			return fmt.Errorf("publisher lookup failed: %w", err)
		}

		fmt.Printf("%s\n", publisher.Name)
		return printJSON(publisher.ISBNs)
	},
}

func newClient() (*isbndb.Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return isbndb.NewClient(config.AppConfig.APIKey, config.AppConfig.Plan), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "ISBNdb API key (or ISBNDB_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&plan, "plan", string(isbndb.PlanDefault), "subscription plan: default, premium, or pro")
	rootCmd.PersistentFlags().IntVar(&page, "page", 1, "result page")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 20, "results per page")
	searchCmd.Flags().StringVar(&language, "language", "", "restrict search results to a language code")
	bookCmd.Flags().BoolVar(&withPrices, "with-prices", false, "include merchant price offers")

	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("plan", rootCmd.PersistentFlags().Lookup("plan"))
	_ = viper.BindPFlag("page", rootCmd.PersistentFlags().Lookup("page"))
	_ = viper.BindPFlag("page_size", rootCmd.PersistentFlags().Lookup("page-size"))
	_ = viper.BindPFlag("language", searchCmd.Flags().Lookup("language"))

	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(publisherCmd)
}
