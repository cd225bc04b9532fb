package main

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/siherrmann/metamodel"
	"github.com/siherrmann/metamodel/helper"
	"github.com/siherrmann/metamodel/loader"
	"github.com/siherrmann/metamodel/model"
)

//go:embed diagram.yaml
var diagramYAML []byte

func main() {
	_ = godotenv.Load()

	configuration, err := helper.NewConfiguration()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	config := model.DefaultConfig()
	config.ApplyConfiguration(configuration)

	diagram, err := loader.Load(diagramYAML)
	if err != nil {
		log.Fatalf("Failed to load diagram: %v", err)
	}

	view, err := diagram.View("Landscape")
	if err != nil {
		log.Fatalf("Failed to find view: %v", err)
	}

	v := metamodel.NewValidator(view, &config)

	fmt.Printf("\nAttractors of %q (property %q):\n", view.Name, config.AttractorProperty)
	for _, concept := range v.AttractorConcepts() {
		fmt.Printf("  - %s\n", concept)
	}
}
