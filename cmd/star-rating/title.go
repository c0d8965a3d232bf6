package main

import "fmt"

// FormatTitle renders the title line for a rating
func FormatTitle(n int) string {
	if n == 1 {
		return "User Rating: 1 Star"
	}
	return fmt.Sprintf("User Rating: %d Stars", n)
}
