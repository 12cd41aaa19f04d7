package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/dbpreflight/pkg/check"
	"github.com/vertti/dbpreflight/pkg/dbcheck"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Padding(0, 2)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor turns off ANSI color codes for all further output.
func DisableColor() {
	green, red, dim, reset = "", "", "", ""
}

// Title is printed in the report banner.
const Title = "Database Driver Verification"

// UseCases are listed when every required check passed.
var UseCases = []string{
	"Connect to MySQL with database/sql and go-sql-driver/mysql",
	"Use sqlx, GORM, ent, sqlc and other database/sql tooling",
	"Connect to MariaDB (wire compatible)",
}

// PrintReport writes the full human-readable report.
func PrintReport(w io.Writer, r dbcheck.Report) {
	fmt.Fprintln(w, boxStyle.Render(Title))
	fmt.Fprintln(w)

	for _, s := range r.Sections {
		printSection(w, s)
		fmt.Fprintln(w)
	}

	printSummary(w, r)
}

func printSection(w io.Writer, s check.Result) {
	indent := ""
	if s.Name != "" {
		fmt.Fprintln(w, s.Name)
		indent = "   "
	}
	for _, l := range s.Lines {
		fmt.Fprintf(w, "%s%s\n", indent, formatLine(l))
	}
}

func formatLine(l check.Line) string {
	switch l.Mark {
	case check.MarkPass:
		return green + "✓" + reset + " " + l.Text
	case check.MarkFail:
		return red + "✗" + reset + " " + l.Text
	case check.MarkInfo:
		return dim + "-" + reset + " " + l.Text
	case check.MarkItem:
		return "• " + l.Text
	default:
		return l.Text
	}
}

func printSummary(w io.Writer, r dbcheck.Report) {
	fmt.Fprintln(w, boxStyle.Render("VERIFICATION SUMMARY"))

	if r.Passed {
		fmt.Fprintf(w, "%s✓ ALL TESTS PASSED%s\n\n", green, reset)
		fmt.Fprintln(w, "Database drivers are properly linked")
		fmt.Fprintln(w, "and ready to use. No additional configuration needed.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "You can now:")
		for _, u := range UseCases {
			fmt.Fprintf(w, "  • %s\n", u)
		}
		return
	}

	fmt.Fprintf(w, "%s✗ SOME TESTS FAILED%s\n\n", red, reset)
	fmt.Fprintf(w, "%d required check(s) failed: database support is not properly linked.\n", r.Failures())
	fmt.Fprintln(w, "Please check the output above for details.")
}

// PrintResult outputs a single check result with colored status.
func PrintResult(w io.Writer, r check.Result) {
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	pad := "     "
	if !r.OK() {
		pad = "       "
	}
	for _, l := range r.Lines {
		fmt.Fprintf(w, "%s%s\n", pad, formatLine(l))
	}
}
