package main

import (
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/container"
)

func main() {
	// A missing .env is normal in Lambda, where the environment is set.
	_ = godotenv.Load()

	c := container.New()
	handler := c.Router()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	config.Logger.WithField("port", port).Info("rpm-server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		config.Logger.WithError(err).Fatal("Server stopped")
	}
}
