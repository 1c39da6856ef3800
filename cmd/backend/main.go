package main

import (
	"log"

	"etatcivil/internal/api"

	_ "etatcivil/docs"
)

// @title API de demandes d'actes d'état civil
// @version 1.0
// @description Dépôt, instruction, paiement et génération des actes d'état civil

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
