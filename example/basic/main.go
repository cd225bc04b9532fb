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
	// A missing .env file is fine, the environment may already be set
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

	view, err := diagram.View("Operations")
	if err != nil {
		log.Fatalf("Failed to find view: %v", err)
	}

	v := metamodel.NewValidator(view, &config)

	fmt.Printf("\nValidating view %q\n", view.Name)
	for _, result := range v.ValidateView() {
		status := "allowed"
		if !result.Allowed {
			status = "NOT allowed"
		}
		rel := result.Relationship
		fmt.Printf("  %s --[%s]--> %s: %s\n", rel.Source.Name, rel.Type, rel.Target.Name, status)
	}
}
