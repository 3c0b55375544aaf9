package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/bootstrap"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

var (
	departments = []string{"Engineering", "Sales", "Marketing", "HR", "Finance", "Operations"}
	roles       = []string{"Dev", "Senior Dev", "Manager", "Analyst", "Consultant", "Lead"}
	genders     = []string{"F", "M"}
	firstNames  = []string{"Aarav", "Diya", "Rohan", "Priya", "Kiran", "Meera", "Arjun", "Sneha", "Vikram", "Ananya"}
	lastNames   = []string{"Sharma", "Patel", "Reddy", "Iyer", "Khan", "Das", "Nair", "Gupta", "Singh", "Bose"}
	reasons     = []string{"Better opportunity", "Relocation", "Work-life balance", "Compensation", "Career change", ""}
)

func main() {
	employees := flag.Int("employees", 50, "Number of employees to seed")
	records := flag.Int("records", 2, "Max performance records per employee")
	attrition := flag.Float64("attrition", 0.2, "Fraction of performance records marked as attrition")
	flag.Parse()

	ctx := context.Background()

	fmt.Println("🚀 HR Analytics Data Seeder")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Println("📡 Initializing application...")
	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	fmt.Printf("👥 Seeding %d employees...\n", *employees)
	var seeded int
	for i := 0; i < *employees; i++ {
		e := domain.Employee{
			Name:        firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))],
			Age:         22 + rand.Intn(38),
			Department:  departments[rand.Intn(len(departments))],
			Role:        roles[rand.Intn(len(roles))],
			Salary:      40000 + rand.Intn(120000),
			JoiningYear: 2015 + rand.Intn(10),
			Gender:      genders[rand.Intn(len(genders))],
		}

		id, err := app.People.AddEmployee(ctx, &e)
		if err != nil {
			log.Fatalf("failed to seed employee: %v", err)
		}

		for j := 0; j < 1+rand.Intn(*records); j++ {
			p := domain.Performance{
				EmployeeID:        id,
				Rating:            1 + rand.Intn(5),
				ProjectsCompleted: rand.Intn(12),
				AvgDailyHours:     6 + rand.Float64()*5,
			}
			if rand.Float64() < *attrition {
				p.Attrition = 1
				p.Reason = reasons[rand.Intn(len(reasons))]
			}
			if err := app.People.AddPerformance(ctx, &p); err != nil {
				log.Fatalf("failed to seed performance record: %v", err)
			}
			seeded++
		}
	}

	fmt.Printf("✅ Done: %d employees, %d performance records\n", *employees, seeded)
}
