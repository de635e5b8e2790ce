package chatbot

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// handleCommand handles special commands. The returned bool reports whether
// the REPL should exit.
func (c *Counsellor) handleCommand(cmd string, userID *string) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false, nil
	}

	switch parts[0] {
	case "/quit", "/exit":
		return true, nil

	case "/history":
		history := c.History(*userID)
		if len(history) == 0 {
			fmt.Println("No conversation yet.")
			return false, nil
		}
		fmt.Println()
		for _, msg := range history {
			fmt.Printf("%s: %s\n", msg.Role, msg.Content)
		}
		fmt.Println()
		return false, nil

	case "/clear":
		c.ClearHistory(*userID)
		fmt.Println("Conversation cleared.")
		return false, nil

	case "/user":
		if len(parts) < 2 {
			return false, fmt.Errorf("usage: /user <id>")
		}
		*userID = parts[1]
		fmt.Printf("Switched to user %s\n", *userID)
		return false, nil

	case "/help":
		fmt.Println("Available commands:")
		fmt.Println("  /quit, /exit  - Exit the counsellor")
		fmt.Println("  /history      - Show the current conversation")
		fmt.Println("  /clear        - Clear the current conversation")
		fmt.Println("  /user <id>    - Switch to another user id")
		fmt.Println("  /help         - Show this help message")
		return false, nil

	default:
		return false, nil
	}
}

// Run starts the interactive counsellor loop
func (c *Counsellor) Run() error {
	defer c.Close()

	userID := c.config.UserID

	fmt.Println("=== CareerGuide Counsellor ===")
	fmt.Printf("User: %s\n", userID)
	fmt.Println("Type /help for commands, /quit to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			shouldQuit, err := c.handleCommand(input, &userID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				c.logger.Error("command error", "error", err)
			}
			if shouldQuit {
				break
			}
			continue
		}

		answer, source := c.Respond(ctx, userID, input)
		fmt.Printf("Bot [%s]: %s\n\n", source, answer)
	}

	fmt.Println("Goodbye!")
	return nil
}
