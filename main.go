package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"microservice/apispec"
	"microservice/config"
	"microservice/logging"
	"microservice/service"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
)

//	@title			Microservice API
//	@version		1.0
//	@description	Static greeting and health check service.
//	@termsOfService	http://swagger.io/terms/

//	@license.name	Apache 2.0

func main() {
	executablePath, err := os.Executable()
	if err != nil {
		fmt.Printf("error getting executable path: %v\n", err)
		return
	}

	appName := filepath.Base(executablePath)

	configPath := flag.String("config", "/usr/local/etc/"+appName+".conf", "path to the TOML config file")
	printOpenAPI := flag.Bool("openapi", false, "print the OpenAPI 3 document and exit")
	flag.Parse()

	if *printOpenAPI {
		doc, err := apispec.Load(context.Background())
		if err != nil {
			log.Fatalf("load openapi document: %s", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			log.Fatalf("encode openapi document: %s", err)
		}
		return
	}

	config := config.NewConfig()
	warnings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %s", err)
	}

	if err := config.ApplyEnv(); err != nil {
		log.Fatalf("loading config: %s", err)
	}

	logger := logging.Init(appName, config)
	defer logger.Sync()

	for _, w := range warnings {
		zap.L().Warn(w, zap.String("path", *configPath))
	}

	ln, err := net.Listen("tcp", ":"+config.ListenPort)
	if err != nil {
		log.Fatalf("listen: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := service.Run(ctx, config, ln); err != nil {
		log.Fatalf("serve: %s", err)
	}
}
