package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sparkbrains-DE/dbt-vc/internal/cli/output"
	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
	_ "github.com/sparkbrains-DE/dbt-vc/pkg/lint/rules" // register metadata rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available metadata rules",
		Long: `List all available metadata rules with their documentation.

Rules are organized by group (documentation, structure, testing,
tagging). Pass a rule ID to see details for a single rule.`,
		Example: `  # List all rules
  dbt-vc rules

  # Show details for a specific rule
  dbt-vc rules MD01

  # List documentation rules only
  dbt-vc rules --group documentation

  # Output as JSON
  dbt-vc rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// ruleInfo is the serializable view of a registered rule.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func newRuleInfo(rule lint.RuleDef) ruleInfo {
	return ruleInfo{
		ID:          rule.ID,
		Name:        rule.Name,
		Group:       rule.Group,
		Description: rule.Description,
		Severity:    rule.Severity.String(),
	}
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	var rules []ruleInfo
	for _, rule := range lint.GetAll() {
		if opts.Group != "" && rule.Group != opts.Group {
			continue
		}
		rules = append(rules, newRuleInfo(rule))
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(struct {
			Rules []ruleInfo `json:"rules"`
			Count int        `json:"count"`
		}{Rules: rules, Count: len(rules)})
	case output.ModeMarkdown:
		r.Println("# Metadata Rules")
		r.Println("")
		for _, rule := range rules {
			r.Printf("- **%s** %s - %s (`%s`)\n", rule.ID, rule.Name, rule.Description, rule.Severity)
		}
		r.Println("")
		return nil
	default:
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Description"})
		for _, rule := range rules {
			t.AppendRow(table.Row{rule.ID, rule.Name, rule.Group, rule.Severity, rule.Description})
		}
		t.Render()
		r.Printf("(%d rules)\n", len(rules))
		return nil
	}
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := lint.GetByID(strings.ToUpper(strings.TrimSpace(ruleID)))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := newRuleInfo(rule)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		r.Printf("# %s - %s\n\n", info.ID, info.Name)
		r.Printf("**Group:** %s | **Severity:** `%s`\n\n", info.Group, info.Severity)
		r.Println(info.Description)
		return nil
	default:
		styles := r.Styles()
		r.Println("")
		r.Println(styles.Bold.Render(fmt.Sprintf("%s - %s", info.ID, info.Name)))
		r.Println("")
		r.Printf("  %s: %s\n", styles.Bold.Render("Group"), info.Group)
		r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), info.Severity)
		r.Println("")
		r.Println("  " + info.Description)
		r.Println("")
		return nil
	}
}
