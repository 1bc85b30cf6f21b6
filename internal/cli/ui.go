package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/andyh1203/npyi/pkg/errors"
	"github.com/andyh1203/npyi/pkg/npyi"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleError     = lipgloss.NewStyle().Foreground(colorRed)
	styleKey       = lipgloss.NewStyle().Foreground(colorGray)
	styleTableHead = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleTableCell = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// PrintError prints err for a user: the message without its code, in red.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+styleError.Render(errors.UserMessage(err)))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// keyWidth is the label column width used by printKeyValue.
const keyWidth = 12

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	printKeyValueWidth(w, keyWidth, key, value)
}

// printKeyValueWidth prints a labeled value with the label padded to width.
// Labels longer than width are widened rather than wrapped.
func printKeyValueWidth(w io.Writer, width int, key, value string) {
	width = max(width, lipgloss.Width(key)+1)
	if value == "" {
		value = StyleDim.Render("-")
	} else {
		value = StyleValue.Render(value)
	}
	fmt.Fprintln(w, styleKey.Width(width).Render(key)+" "+value)
}

// =============================================================================
// Providers
// =============================================================================

// printProviderTable renders one row per provider.
func printProviderTable(w io.Writer, providers []npyi.Provider) {
	rows := make([][]string, 0, len(providers))
	for _, p := range providers {
		rows = append(rows, []string{
			p.Number.String(),
			p.Name(),
			p.EnumerationType,
			p.PrimaryTaxonomy(),
			formatLocation(p.Location()),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHead
			}
			return styleTableCell
		}).
		Headers("NPI", "NAME", "TYPE", "TAXONOMY", "LOCATION").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// printProvider prints a single provider as labeled lines.
func printProvider(w io.Writer, p *npyi.Provider) {
	fmt.Fprintln(w, StyleTitle.Render(p.Name()))
	printKeyValue(w, "NPI", p.Number.String())
	printKeyValue(w, "Type", p.EnumerationType)
	printKeyValue(w, "Credential", p.Basic.Credential)
	printKeyValue(w, "Status", p.Basic.Status)
	printKeyValue(w, "Taxonomy", p.PrimaryTaxonomy())
	for _, a := range p.Addresses {
		printKeyValue(w, titleCase(a.AddressPurpose), formatAddress(a))
	}
}

func formatLocation(a *npyi.Address) string {
	if a == nil {
		return ""
	}
	return a.City + ", " + a.State
}

func formatAddress(a npyi.Address) string {
	parts := []string{a.Address1}
	if a.Address2 != "" {
		parts = append(parts, a.Address2)
	}
	parts = append(parts, a.City+", "+a.State+" "+a.PostalCode)
	return strings.Join(parts, ", ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
