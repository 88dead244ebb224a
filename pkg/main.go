package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/pixelnegociosdigitais/datascope/pkg/internal"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/cache"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/database"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/http"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.CyanString(" ____        _        ____\n|  _ \\  __ _| |_ __ _/ ___|  ___ ___  _ __   ___\n| | | |/ _` | __/ _` \\___ \\ / __/ _ \\| '_ \\ / _ \\\n| |_| | (_| | || (_| |___) | (_| (_) | |_) |  __/\n|____/ \\__,_|\\__\\__,_|____/ \\___\\___/| .__/ \\___|\n                                     |_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiCyan).Add(color.Bold).Sprintf("DataScope"), pkg.AppVersion)
	fmt.Printf("The survey and giveaway platform for growing companies\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	if len(viper.GetString("security.jwt_secret")) == 0 {
		log.Warn().Msg("No jwt secret configured. Session tokens cannot be verified and authenticated features will be disabled.")
	}

	// Prepare cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache store.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
