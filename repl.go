package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// runREPL drives one conversation on the terminal. With --account the user
// is logged in and transfers can complete; otherwise the transfer flow asks
// them to log in.
func runREPL(cfg Config, account string) error {
	engine, phrases, ledger, err := buildStack(cfg)
	if err != nil {
		return err
	}
	defer phrases.Close()

	if account != "" {
		if _, err := ledger.LookupAccount(account); err != nil {
			return fmt.Errorf("unknown account %s", account)
		}
	}

	mem := NewSessionMemory()
	fmt.Println("Bank Assistant: Hello! How can I assist you today?")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println()
			fmt.Println("Bank Assistant: Goodbye! Have a great day.")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		reply := engine.Process(mem, line, account)
		fmt.Println("Bank Assistant:", reply.Text)
		if reply.Intent == "goodbye" {
			return nil
		}
	}
}
