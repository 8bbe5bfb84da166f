package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"codechat-backend/internal/chat"
)

// Terminal chat client. Drives the same Submit contract as the browser page.
func main() {
	relayURL := os.Getenv("RELAY_URL")
	if relayURL == "" {
		relayURL = "http://localhost:8080"
	}

	client := chat.NewClient(relayURL, chat.NewConversation())

	fmt.Println("CodeChat — paste code or a question, Ctrl-D to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		reply, ok := client.Submit(context.Background(), scanner.Text())
		if !ok {
			continue
		}
		fmt.Printf("bot: %s\n", reply.Text)
	}

	fmt.Println()
}
