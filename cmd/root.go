package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/cmd/play"
	"github.com/golangdaddy/roadrush/pkg/cmd/race"
	"github.com/golangdaddy/roadrush/pkg/cmd/snapshot"
	"github.com/golangdaddy/roadrush/pkg/cmd/term"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ROADRUSH"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roadrush",
	Short: "Pseudo 3D arcade racer",
	Long: `Race a looping track full of traffic. Use "play" for a window,
"term" for the terminal and "snapshot" to render a frame without a display.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(race.LogLevel, race.LogFormat); err != nil {
			return err
		}
		return race.Settings.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.roadrush.yml)")
	rootCmd.PersistentFlags().StringVar(&race.LogLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&race.LogFormat, "log-format", "console",
		"log format (console or json)")
	rootCmd.PersistentFlags().BoolVar(&race.EnableTelemetry, "telemetry", false,
		"export lap and speed metrics to stderr")
	rootCmd.PersistentFlags().DurationVar(&race.TelemetryInterval, "telemetry-interval", 10*time.Second,
		"how often metrics are exported")

	addSettingsFlags(rootCmd.PersistentFlags())

	// add commands here
	rootCmd.AddCommand(play.NewPlayCmd())
	rootCmd.AddCommand(term.NewTermCmd())
	rootCmd.AddCommand(snapshot.NewSnapshotCmd())
}

func addSettingsFlags(f *pflag.FlagSet) {
	s := &race.Settings
	f.IntVar(&s.Width, "width", s.Width, "screen width in pixels")
	f.IntVar(&s.Height, "height", s.Height, "screen height in pixels")
	f.IntVar(&s.Lanes, "lanes", s.Lanes, "number of lanes (1-6)")
	f.Float64Var(&s.RoadWidth, "road-width", s.RoadWidth, "half the road width in world units")
	f.Float64Var(&s.CameraHeight, "camera-height", s.CameraHeight, "camera height above the road")
	f.IntVar(&s.DrawDistance, "draw-distance", s.DrawDistance, "segments drawn ahead of the camera")
	f.Float64Var(&s.FogDensity, "fog-density", s.FogDensity, "exponential fog density (0 disables fog)")
	f.Float64Var(&s.FieldOfView, "field-of-view", s.FieldOfView, "field of view in degrees")
	f.Float64Var(&s.SegmentLength, "segment-length", s.SegmentLength, "length of one road segment")
	f.IntVar(&s.RumbleLength, "rumble-length", s.RumbleLength, "segments per colour band")
	f.IntVar(&s.TotalCars, "total-cars", s.TotalCars, "number of traffic cars")
	f.Int64Var(&s.Seed, "seed", s.Seed, "track and traffic seed (0 picks one from the clock)")
	f.IntVar(&s.FPS, "fps", s.FPS, "physics steps per second")
	f.Float64Var(&s.Centrifugal, "centrifugal", s.Centrifugal, "how hard curves push the car outward")
	f.StringVar(&s.ProfilePath, "profile", "", "profile file (default is $HOME/.roadrush-profile.json)")
	f.StringVar(&s.AssetDir, "assets", "", "directory holding background.png and sprites.png")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".roadrush" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".roadrush")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --road-width to ROADRUSH_ROAD_WIDTH
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
