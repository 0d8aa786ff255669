package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pratik-mahalle/scimctl/internal/config"
	"github.com/pratik-mahalle/scimctl/internal/pkg/logger"
	"github.com/pratik-mahalle/scimctl/pkg/scim"
)

var (
	cfgFile      string
	outputFormat string
	serverURL    string
	bearerToken  string
	pageSize     int
	apiClient    *scim.Client
)

var rootCmd = &cobra.Command{
	Use:   "scimctl",
	Short: "scimctl - SCIM user and group management CLI",
	Long: `scimctl manages Users and Groups on a SCIM 2.0 identity API:
list resources across all pages, create users and groups, delete
single resources or whole collections, and manage group membership.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config commands run without a client.
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}
		return initClient()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.scimctl/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "pretty", "output format: pretty, json, yaml")
	rootCmd.PersistentFlags().StringVar(&serverURL, "url", "", "base URL of the SCIM API (overrides config)")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "bearer token for authentication (overrides config)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "listing page size (default 1000)")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("page_size", rootCmd.PersistentFlags().Lookup("page-size"))

	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newGroupsCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newConfigCmd())
}

func initConfig() {
	envCfg := config.Load()

	logger.Init(logger.Config{
		Level:  envCfg.Logging.Level,
		Format: envCfg.Logging.Format,
	})

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		configDir := home + "/.scimctl"
		_ = os.MkdirAll(configDir, 0700)
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SCIMCTL")
	viper.AutomaticEnv()

	viper.SetDefault("url", envCfg.Client.URL)
	viper.SetDefault("token", envCfg.Client.Token)
	viper.SetDefault("output", "pretty")
	viper.SetDefault("page_size", envCfg.Client.PageSize)
	viper.SetDefault("http_timeout", envCfg.Client.Timeout.String())
	viper.SetDefault("delete_delay", envCfg.Delete.Delay.String())

	_ = viper.ReadInConfig()
}

func initClient() error {
	url := viper.GetString("url")
	if serverURL != "" {
		url = serverURL
	}
	if url == "" {
		return fmt.Errorf("SCIM API URL not set. Use --url, SCIM_URL, or run 'scimctl config init'")
	}

	token := viper.GetString("token")
	if bearerToken != "" {
		token = bearerToken
	}
	if token == "" {
		return fmt.Errorf("bearer token not set. Use --token, SCIM_TOKEN, or run 'scimctl config init'")
	}

	size := viper.GetInt("page_size")
	if pageSize > 0 {
		size = pageSize
	}

	timeout, _ := time.ParseDuration(viper.GetString("http_timeout"))

	log := logger.Get().GetZerolog()
	apiClient = scim.NewClient(scim.Config{
		BaseURL:  url,
		Token:    token,
		PageSize: size,
		Timeout:  timeout,
		Logger:   &log,
	})
	return nil
}

func getOutputFormat() string {
	if outputFormat != "" && outputFormat != "pretty" {
		return outputFormat
	}
	return viper.GetString("output")
}

func defaultDeleteDelay() time.Duration {
	d, err := time.ParseDuration(viper.GetString("delete_delay"))
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}
