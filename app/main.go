package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/viper"

	"github.com/dudesahn/wBLTRouter/domain"
	routerlog "github.com/dudesahn/wBLTRouter/log"
)

// @title           wBLT Router Query Server API
// @version         1.0
func main() {
	configPath := flag.String("config", "config.json", "config file location")

	hostName := flag.String("host", "wblt-router", "the name of the host")

	isDebug := flag.Bool("debug", false, "debug mode")
	if *isDebug {
		log.Println("Service RUN on DEBUG mode")
	}

	// Parse the command-line arguments
	flag.Parse()

	fmt.Println("configPath", *configPath)
	fmt.Println("hostName", *hostName)

	config := domain.DefaultConfig
	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err == nil {
		if err := viper.Unmarshal(&config); err != nil {
			fmt.Println("Error unmarshalling config:", err)
			return
		}
	} else {
		log.Println("config file not read, using defaults:", err)
	}

	// Handle SIGINT and SIGTERM signals to initiate shutdown
	exitChan := make(chan os.Signal, 1)
	signal.Notify(exitChan, os.Interrupt, syscall.SIGTERM)

	defer func() {
		if err := recover(); err != nil {
			log.Println(err)
			exitChan <- syscall.SIGTERM
		}
	}()

	if config.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			ServerName: *hostName,
			Dsn:        config.SentryDSN,
			Debug:      *isDebug,
		})
		if err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// logger
	logger, err := routerlog.NewLogger(config.LoggerIsProduction, config.LoggerFilename, config.LoggerLevel)
	if err != nil {
		panic(fmt.Errorf("error while creating logger: %s", err))
	}
	logger.Info("Starting router query server")

	env := newEnvironment()

	queryServer, err := NewRouterQueryServer(config, env.poolRepository, env.vault, env.native, env.option, env.bank, env.bank, logger)
	if err != nil {
		panic(err)
	}

	// Use context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-exitChan
		cancel() // Trigger shutdown

		err := queryServer.Shutdown(ctx)
		if err != nil {
			log.Fatal(err)
		}

		os.Exit(0)
	}()

	if err := queryServer.Start(ctx); err != nil {
		panic(err)
	}
}
