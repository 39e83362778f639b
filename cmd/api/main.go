package main

import (
	_ "kcc_quote/docs"
	"kcc_quote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           KCC Quote Pricing Service API
// @version         1.0
// @description     Quote pricing, estimate snapshots and contract reconciliation backed by DynamoDB.

// @contact.name   Partner Platform Team

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
