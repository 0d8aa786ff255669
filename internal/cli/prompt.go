package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

func promptInput(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func promptSecret(prompt string) string {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(secret)
}

// confirmDeleteAll guards whole-collection deletion. Anything other
// than a literal "yes" cancels.
func confirmDeleteAll(resourceType string) bool {
	answer := promptInput(fmt.Sprintf("No ID specified. This will delete ALL %s. Are you sure? (yes/no): ", resourceType))
	return strings.EqualFold(answer, "yes")
}
