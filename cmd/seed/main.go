// Command seed populates a running server with demo users and articles
// through the public API. Useful for manual testing.
package main

import (
	"flag"
	"fmt"
	"log"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	count := flag.Int("count", 15, "number of articles to create")
	email := flag.String("email", "demo@example.com", "demo user email")
	password := flag.String("password", "demopassword123", "demo user password")
	flag.Parse()

	client := NewAPIClient(*baseURL)

	user, err := client.Signup(*email, *password, "Demo Author")
	if err != nil {
		// The demo user may already exist from a previous run.
		log.Printf("signup skipped: %v", err)
	} else {
		log.Printf("created user %d (%s)", user.ID, user.Email)
	}

	token, err := client.Signin(*email, *password)
	if err != nil {
		log.Fatalf("signin failed: %v", err)
	}

	for i := 1; i <= *count; i++ {
		title := fmt.Sprintf("Seed Article %d", i)
		article, err := client.CreateArticle(token, title,
			fmt.Sprintf("Description for seed article %d", i),
			fmt.Sprintf("Content body for seed article %d.", i))
		if err != nil {
			log.Printf("create %q failed: %v", title, err)
			continue
		}
		log.Printf("created article %d: %s", article.ID, article.Title)
	}

	list, err := client.ListArticles(10, 1)
	if err != nil {
		log.Fatalf("list failed: %v", err)
	}
	log.Printf("listing page 1: %d items, %d total", len(list.Items), list.Total)
}
