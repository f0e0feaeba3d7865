// Command seed populates the store with deterministic sample customers and
// orders for local development. It is the only write path in the project; the
// HTTP API itself is read-only.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/example/orderdash/internal/config"
	"github.com/example/orderdash/internal/database"
	"github.com/example/orderdash/internal/models"
)

var (
	firstNames = []string{
		"Olivia", "Liam", "Emma", "Noah", "Charlotte", "Oliver", "Amelia",
		"Elijah", "Sophia", "Lucas", "Isabella", "Henry", "Mia", "Theodore",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Martinez", "Wilson", "Anderson", "Taylor", "Thomas", "Moore",
	}
	cities = []string{
		"Toronto", "Vancouver", "Montreal", "Calgary", "Ottawa", "Halifax",
		"Winnipeg", "Edmonton", "Quebec City", "Victoria",
	}
	paymentMethods = []string{
		"credit_card", "debit_card", "paypal", "bank_transfer", "apple_pay",
	}
)

func main() {
	customerCount := flag.Int("customers", 50, "number of customers to insert")
	orderCount := flag.Int("orders", 250, "number of orders to insert")
	clean := flag.Bool("clean", false, "delete existing data before inserting")
	seed := flag.Int64("seed", 1, "random seed for reproducible data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	if *clean {
		if err := db.Exec("DELETE FROM orders").Error; err != nil {
			log.Fatalf("clean orders: %v", err)
		}
		if err := db.Exec("DELETE FROM customers").Error; err != nil {
			log.Fatalf("clean customers: %v", err)
		}
		log.Print("existing data removed")
	}

	customers := make([]models.Customer, 0, *customerCount)
	for i := 0; i < *customerCount; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		city := cities[rng.Intn(len(cities))]

		customers = append(customers, models.Customer{
			Name:    first + " " + last,
			Email:   fmt.Sprintf("%s.%s%d@example.com", first, last, i),
			Phone:   fmt.Sprintf("+1-555-%04d", rng.Intn(10000)),
			Address: fmt.Sprintf("%d Main Street", 1+rng.Intn(9999)),
			City:    city,
			Country: "Canada",
		})
	}
	if err := db.CreateInBatches(&customers, 100).Error; err != nil {
		log.Fatalf("insert customers: %v", err)
	}
	log.Printf("inserted %d customers", len(customers))

	now := time.Now().UTC()
	orders := make([]models.Order, 0, *orderCount)
	for i := 0; i < *orderCount; i++ {
		customer := customers[rng.Intn(len(customers))]
		daysAgo := rng.Intn(365)
		orderDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, -daysAgo)

		orders = append(orders, models.Order{
			CustomerID:      customer.ID,
			OrderDate:       orderDate,
			Total:           float64(500+rng.Intn(495000)) / 100,
			Status:          statusForAge(rng, daysAgo),
			ShippingAddress: customer.Address + ", " + customer.City + ", " + customer.Country,
			PaymentMethod:   paymentMethods[rng.Intn(len(paymentMethods))],
		})
	}
	if err := db.CreateInBatches(&orders, 100).Error; err != nil {
		log.Fatalf("insert orders: %v", err)
	}
	log.Printf("inserted %d orders", len(orders))
}

// statusForAge mirrors the aging rules of the original data generator: old
// orders are mostly fulfilled, recent ones are still in flight.
func statusForAge(rng *rand.Rand, daysAgo int) string {
	roll := rng.Float64()
	switch {
	case daysAgo > 7:
		switch {
		case roll < 0.80:
			return string(models.StatusCompleted)
		case roll < 0.90:
			return string(models.StatusDelivered)
		case roll < 0.97:
			return string(models.StatusReturned)
		default:
			return string(models.StatusCancelled)
		}
	case daysAgo > 3:
		if roll < 0.4 {
			return string(models.StatusShipped)
		}
		return string(models.StatusCompleted)
	case daysAgo > 1:
		if roll < 0.4 {
			return string(models.StatusProcessing)
		}
		return string(models.StatusShipped)
	default:
		if roll < 0.3 {
			return string(models.StatusPending)
		}
		return string(models.StatusProcessing)
	}
}
