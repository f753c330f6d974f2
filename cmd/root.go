// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the hystdrv command line tool
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfgFile is the config file given with --config
var cfgFile string

// logger logs progress; enabled by --verbose
var logger kitlog.Logger = kitlog.NewNopLogger()

var rootCmd = &cobra.Command{
	Use:   "hystdrv",
	Short: "Strain-driven tests of uniaxial hysteretic models",
	Long: `hystdrv - strain-driven tests of uniaxial hysteretic models

Materials are read from .mat JSON files and driven through strain paths,
one converged step at a time. Available models:
  - modboucwen  modified Bouc-Wen with pinching and failure
  - tsb         two-stage friction/self-centering bearing
  - tsscb       two-stage self-centering brace with degradation and fracture
  - failure     failure wrapper around another material
  - steel01     bilinear kinematic hardening
  - elastic     linear elastic

Settings may also be given in a config file (--config) or as
HYSTDRV_* environment variables; e.g. HYSTDRV_NPTS=100.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := initConfig()
		if err != nil {
			return err
		}
		initLogger()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file; e.g. hystdrv.yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads the config file and environment variables
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	viper.SetEnvPrefix("HYSTDRV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return nil
}

// initLogger sets the loggers of this package and of the models
func initLogger() {
	if !viper.GetBool("verbose") {
		logger = kitlog.NewNopLogger()
		uniax.SetLogger(nil)
		return
	}
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	l = kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)
	logger = kitlog.With(l, "cmd", "hystdrv")
	uniax.SetLogger(l)
}
