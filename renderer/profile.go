package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/expenses"
)

// Profile renders the profile header shown after login.
func Profile(p *expenses.Profile, currency string) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Profile")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "* **Username:** %s\n", p.Username())
	fmt.Fprintf(&b, "* **Age:** %d\n", p.Age())
	fmt.Fprintf(&b, "* **Current Balance:** %s\n", p.Balance().Format(currency))
	return b.String()
}
