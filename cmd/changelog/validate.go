package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// ValidationError is a single validation issue. Line is 0 for file-level
// issues.
type ValidationError struct {
	Line    int
	Message string
}

// ValidationResult holds all validation errors for a changelog.
type ValidationResult struct {
	Errors []ValidationError
}

func (r *ValidationResult) AddError(line int, message string) {
	r.Errors = append(r.Errors, ValidationError{Line: line, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a changelog follows Keep a Changelog spec",
	Long: `Validate that a changelog file follows the Keep a Changelog specification.

Checks include:
- File has a title (# Changelog)
- Has an [Unreleased] section
- Version entries use correct format: ## [X.Y.Z] - YYYY-MM-DD
- Dates are in ISO 8601 format (YYYY-MM-DD)
- Change types are valid (Added, Changed, Deprecated, Removed, Fixed, Security)
- Link definitions exist for all versions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		result := Validate(content)

		if result.IsValid() {
			fmt.Println("✓ Changelog is valid")
			return nil
		}

		fmt.Printf("Found %d issue(s):\n\n", len(result.Errors))
		for _, e := range result.Errors {
			if e.Line > 0 {
				fmt.Printf("  Line %d: %s\n", e.Line, e.Message)
			} else {
				fmt.Printf("  %s\n", e.Message)
			}
		}

		os.Exit(1)
		return nil
	},
}

var (
	dateRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	versionRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	validTypes   = map[string]bool{
		"Added":      true,
		"Changed":    true,
		"Deprecated": true,
		"Removed":    true,
		"Fixed":      true,
		"Security":   true,
	}
)

// Validate checks a changelog against the Keep a Changelog spec.
func Validate(source []byte) *ValidationResult {
	result := &ValidationResult{}

	hasTitle := false
	hasUnreleased := false
	versions := make(map[string]bool)

	for i, line := range strings.Split(string(source), "\n") {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "### "):
			checkChangeType(result, lineNum, strings.TrimPrefix(trimmed, "### "))

		case strings.HasPrefix(trimmed, "## ["):
			version := checkVersionHeading(result, lineNum, trimmed)
			if strings.EqualFold(version, "unreleased") {
				hasUnreleased = true
			} else if version != "" {
				versions[version] = true
			}

		case strings.HasPrefix(trimmed, "# "):
			hasTitle = true
			if !strings.Contains(strings.ToLower(trimmed), "changelog") {
				result.AddError(lineNum, "Title should contain 'Changelog'")
			}
		}
	}

	if !hasTitle {
		result.AddError(0, "Missing changelog title (# Changelog)")
	}
	if !hasUnreleased {
		result.AddError(0, "Missing [Unreleased] section")
	}

	checkLinkDefinitions(result, source, versions, hasUnreleased)

	return result
}

func checkChangeType(result *ValidationResult, lineNum int, changeType string) {
	if !validTypes[changeType] {
		result.AddError(lineNum, fmt.Sprintf("Invalid change type '%s'. Valid types: Added, Changed, Deprecated, Removed, Fixed, Security", changeType))
	}
}

// checkVersionHeading validates a "## [version] - date" line and returns
// the version it names, or "" if the heading is malformed.
func checkVersionHeading(result *ValidationResult, lineNum int, line string) string {
	end := strings.Index(line, "]")
	if end <= 4 {
		return ""
	}
	version := line[4:end]

	if strings.EqualFold(version, "unreleased") {
		return version
	}

	if !versionRegex.MatchString(version) {
		result.AddError(lineNum, fmt.Sprintf("Version '%s' should follow semantic versioning (X.Y.Z)", version))
	}

	if !strings.Contains(line, " - ") {
		result.AddError(lineNum, fmt.Sprintf("Version '%s' is missing a release date", version))
		return version
	}

	parts := strings.SplitN(line[end+1:], " - ", 2)
	if len(parts) == 2 {
		date := strings.TrimSpace(parts[1])
		if !dateRegex.MatchString(date) {
			result.AddError(lineNum, fmt.Sprintf("Date '%s' should be in ISO 8601 format (YYYY-MM-DD)", date))
		}
	}

	return version
}

func checkLinkDefinitions(result *ValidationResult, source []byte, versions map[string]bool, hasUnreleased bool) {
	changelog, err := Parse(source)
	if err != nil || changelog == nil {
		return
	}

	for version := range versions {
		if _, ok := changelog.Links[version]; !ok {
			result.AddError(0, fmt.Sprintf("Missing link definition for version [%s]", version))
		}
	}

	if hasUnreleased {
		if _, ok := changelog.Links["Unreleased"]; !ok {
			result.AddError(0, "Missing link definition for [Unreleased]")
		}
	}
}

func init() {
	validateCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
	rootCmd.AddCommand(validateCmd)
}
