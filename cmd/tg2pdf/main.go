// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tg2pdf CLI.
//
// tg2pdf converts a Telegram JSON export into size-bounded PDF documents,
// one set per personal chat, ready for text chunking and embedding.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tg2pdf CLI.
var rootCmd = &cobra.Command{
	Use:   "tg2pdf",
	Short: "Convert Telegram chat exports into PDFs for vector databases",
	Long: `tg2pdf reads the result.json of a Telegram export and writes one or more
PDF files per personal chat. Each file is kept under a target size by
estimating output from message statistics, so large chats are split into
numbered parts without rendering anything twice.

A metadata_summary.json next to the PDFs maps every file to the person it
belongs to. Runs can optionally be recorded in a SQLite catalog and
searched later.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		logger.SetLevel(viper.GetString("log.level"))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tg2pdf.yaml or ~/.config/tg2pdf/tg2pdf.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress per-chat progress lines")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tg2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tg2pdf"))
		}
	}

	setDefaults(viper.GetViper())
	configureEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
